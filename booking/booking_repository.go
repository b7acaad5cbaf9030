package booking

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

const bookingColumns = `
		id, court_id, date::text, start_min, end_min, status,
		COALESCE(user_id, ''), COALESCE(manager_id, ''),
		COALESCE(customer_name, ''), COALESCE(customer_email, ''), COALESCE(customer_phone, ''),
		price, created_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.CourtID,
		&booking.Date,
		&booking.Start,
		&booking.End,
		&booking.Status,
		&booking.UserID,
		&booking.ManagerID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Price,
		&booking.CreatedAt,
	)

	return booking, err
}

func (r *Repository) queryBookings(ctx context.Context, sql string, args ...any) ([]Booking, error) {
	rows, err := r.conn.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingsForDate(ctx context.Context, date string, all bool) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
			FROM bookings
			WHERE date=$1
			ORDER BY start_min;`

	if !all {
		sql = `SELECT ` + bookingColumns + `
			FROM bookings
			WHERE date=$1 AND status='confirmed'
			ORDER BY start_min;`
	}

	return r.queryBookings(ctx, sql, date)
}

func (r *Repository) GetConfirmedBookingsForDate(ctx context.Context, date string) ([]Booking, error) {
	return r.GetBookingsForDate(ctx, date, false)
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + `
			FROM bookings
			WHERE id=$1;`

	booking, err := scanBooking(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
			FROM bookings
			WHERE user_id=$1
			ORDER BY date DESC, start_min;`

	return r.queryBookings(ctx, sql, userID)
}

func (r *Repository) GetRecentBookings(ctx context.Context, limit int) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
			FROM bookings
			ORDER BY date DESC, start_min ASC
			LIMIT $1;`

	return r.queryBookings(ctx, sql, limit)
}

// InsertBooking is the single writer for new reservations. The transaction
// serializes on an advisory lock keyed on (court, date), re-checks overlap
// against confirmed bookings while holding it, and only then inserts. Two
// racing requests for the same court and day queue on the lock; the loser
// sees the winner's row and gets ErrSlotUnavailable.
func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, booking.CourtID+"|"+booking.Date)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to lock court day: %w", err)
	}

	var taken bool
	err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE court_id=$1 AND date=$2 AND status='confirmed'
				AND start_min < $4 AND $3 < end_min
			);`,
		booking.CourtID, booking.Date, int(booking.Start), int(booking.End),
	).Scan(&taken)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if taken {
		return Booking{}, ErrSlotUnavailable
	}

	booking.Status = StatusConfirmed

	err = tx.QueryRow(ctx, `
			INSERT INTO bookings(
			id, court_id, date, start_min, end_min, status,
			user_id, manager_id, customer_name, customer_email, customer_phone, price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING created_at;`,
		booking.ID,
		booking.CourtID,
		booking.Date,
		int(booking.Start),
		int(booking.End),
		booking.Status,
		booking.UserID,
		booking.ManagerID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.Price,
	).Scan(&booking.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status string) error {
	sql := `
			UPDATE bookings
			SET status=$1
			WHERE id=$2;
		`

	tag, err := r.conn.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}
