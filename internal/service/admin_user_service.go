package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/repository"
)

// ErrSuperuserExists is returned by EnsureSuperuser when a superuser is
// already present.
var ErrSuperuserExists = errors.New("superuser already exists")

// AdminUserService bootstraps operator accounts.
type AdminUserService interface {
	// EnsureSuperuser creates a superuser unless one already exists.
	EnsureSuperuser(ctx context.Context, username, email, password string) (*model.AdminUser, error)
}

type adminUserService struct {
	repo repository.AdminUserRepository
	cost int
}

// NewAdminUserService creates an AdminUserService hashing with bcrypt's
// default cost.
func NewAdminUserService(repo repository.AdminUserRepository) AdminUserService {
	return &adminUserService{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *adminUserService) EnsureSuperuser(ctx context.Context, username, email, password string) (*model.AdminUser, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}

	exists, err := s.repo.SuperuserExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check superuser: %w", err)
	}
	if exists {
		return nil, ErrSuperuserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsSuperuser:  true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create superuser: %w", err)
	}
	return u, nil
}
