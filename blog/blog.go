package blog

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("blog post not found")

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
