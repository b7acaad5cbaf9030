package blog

import "context"

type BlogRepository interface {
	GetPosts(ctx context.Context) ([]Post, error)
	GetPostByID(ctx context.Context, id string) (Post, error)
}

type Service struct {
	repo BlogRepository
}

func NewService(repo BlogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetPosts(ctx context.Context) ([]Post, error) {
	return s.repo.GetPosts(ctx)
}

func (s *Service) GetPostByID(ctx context.Context, id string) (Post, error) {
	return s.repo.GetPostByID(ctx, id)
}
