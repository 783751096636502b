package auth

import (
	"context"

	"resort-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
