package blog

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

func (r *Repository) GetPosts(ctx context.Context) ([]Post, error) {
	sql := `
			SELECT id, title, content, COALESCE(image_url, ''), author, created_at
			FROM blogs
			ORDER BY created_at DESC;
		`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog posts: %w", err)
	}

	defer rows.Close()

	var posts []Post

	for rows.Next() {
		var post Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.ImageURL,
			&post.Author,
			&post.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning blog row: %w", err)
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog rows: %w", err)
	}

	return posts, nil
}

func (r *Repository) GetPostByID(ctx context.Context, id string) (Post, error) {
	sql := `
			SELECT id, title, content, COALESCE(image_url, ''), author, created_at
			FROM blogs
			WHERE id=$1;
		`

	var post Post
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ImageURL,
		&post.Author,
		&post.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Post{}, ErrPostNotFound
	}

	if err != nil {
		return Post{}, fmt.Errorf("failed to fetch blog post with id %v: %w", id, err)
	}

	return post, nil
}
