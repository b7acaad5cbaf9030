package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetAllCourts(ctx context.Context) ([]Court, error) {
	sql := `
			SELECT id, name, description, category, features, pricing_periods
			FROM courts
			ORDER BY id;
		`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	var courts []Court

	for rows.Next() {
		var court Court
		err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Description,
			&court.Category,
			&court.Features,
			&court.PricingPeriods,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, nil
}

func (r *Repository) GetCourtByID(ctx context.Context, id string) (Court, error) {
	sql := `
			SELECT id, name, description, category, features, pricing_periods
			FROM courts
			WHERE id=$1;
		`

	var court Court
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&court.ID,
		&court.Name,
		&court.Description,
		&court.Category,
		&court.Features,
		&court.PricingPeriods,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court with id %v: %w", id, err)
	}

	return court, nil
}

func (r *Repository) InsertCourt(ctx context.Context, court Court) (Court, error) {
	sql := `
			INSERT INTO courts(id, name, description, category, features, pricing_periods)
			VALUES ($1, $2, $3, $4, $5, $6);
		`

	_, err := r.conn.Exec(ctx, sql,
		court.ID,
		court.Name,
		court.Description,
		court.Category,
		court.Features,
		court.PricingPeriods,
	)

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", err)
	}

	return court, nil
}

func (r *Repository) UpdateCourt(ctx context.Context, court Court) error {
	sql := `
			UPDATE courts
			SET
				name=$1,
				description=$2,
				category=$3,
				features=$4,
				pricing_periods=$5
			WHERE id=$6;
		`

	tag, err := r.conn.Exec(ctx, sql,
		court.Name,
		court.Description,
		court.Category,
		court.Features,
		court.PricingPeriods,
		court.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}

func (r *Repository) DeleteCourt(ctx context.Context, id string) error {
	sql := `DELETE FROM courts WHERE id=$1;`

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete court '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}
