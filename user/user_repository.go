package user

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

func (r *Repository) GetAllUsers(ctx context.Context) ([]Profile, error) {
	sql := `
			SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, ''),
			       COALESCE(role, ''), COALESCE(birthdate, ''), no_show_user
			FROM users
			ORDER BY name;
		`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	defer rows.Close()

	var users []Profile

	for rows.Next() {
		var profile Profile
		err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Phone,
			&profile.Email,
			&profile.Role,
			&profile.Birthdate,
			&profile.NoShowUser,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}

		users = append(users, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (Profile, error) {
	sql := `
			SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, ''),
			       COALESCE(role, ''), COALESCE(birthdate, ''), no_show_user
			FROM users
			WHERE id=$1;
		`

	var profile Profile
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Phone,
		&profile.Email,
		&profile.Role,
		&profile.Birthdate,
		&profile.NoShowUser,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrUserNotFound
	}

	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return profile, nil
}

func (r *Repository) UpdateUser(ctx context.Context, profile Profile) error {
	sql := `
			UPDATE users
			SET
				name=$1,
				phone=$2,
				email=$3,
				role=$4,
				birthdate=$5,
				no_show_user=$6
			WHERE id=$7;
		`

	tag, err := r.conn.Exec(ctx, sql,
		profile.Name,
		profile.Phone,
		profile.Email,
		profile.Role,
		profile.Birthdate,
		profile.NoShowUser,
		profile.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update user '%v': %w", profile.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	sql := `DELETE FROM users WHERE id=$1;`

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete user '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
