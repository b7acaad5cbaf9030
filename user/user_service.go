package user

import "context"

type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]Profile, error)
	GetUserByID(ctx context.Context, id string) (Profile, error)
	UpdateUser(ctx context.Context, profile Profile) error
	DeleteUser(ctx context.Context, id string) error
}

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAllUsers(ctx context.Context) ([]Profile, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *Service) FindUserByID(ctx context.Context, id string) (Profile, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) ModifyUser(ctx context.Context, profile Profile) error {
	return s.repo.UpdateUser(ctx, profile)
}

func (s *Service) RemoveUser(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}
