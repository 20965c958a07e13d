package usecase

import (
	"context"
	"errors"
	"strings"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUser        = errors.New("invalid user fields")
)

type AuthUseCase interface {
	Register(ctx context.Context, fullName, email, plainPassword string) (*user.User, string, error)
	Login(ctx context.Context, email, plainPassword string) (*user.User, string, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type authUseCaseImpl struct {
	users store.UserStore
	jwt   *jwt.Service
}

func NewAuthUseCase(users store.UserStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{users: users, jwt: jwtService}
}

func (u *authUseCaseImpl) Register(ctx context.Context, fullName, email, plainPassword string) (*user.User, string, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, "", errs.Mark(user.ErrEmptyName, ErrInvalidUser)
	}
	normalized, err := user.NormalizeEmail(email)
	if err != nil {
		return nil, "", errs.Mark(err, ErrInvalidUser)
	}
	if len(plainPassword) < 8 {
		return nil, "", errs.Mark(errs.New("password must be at least 8 characters"), ErrInvalidUser)
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to hash password")
	}

	created, err := u.users.Create(ctx, store.NewUser{
		FullName:     fullName,
		Email:        normalized,
		PasswordHash: hash,
		Role:         user.RoleUser,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", errs.Wrap(err, "failed to create user")
	}

	token, err := u.jwt.GenerateToken(created.ID, created.Role)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to sign token")
	}
	return created, token, nil
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*user.User, string, error) {
	normalized, err := user.NormalizeEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	found, err := u.users.FindByEmail(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errs.Wrap(err, "failed to find user")
	}

	if err := password.ComparePassword(found.PasswordHash, plainPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(found.ID, found.Role)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to sign token")
	}
	return found, token, nil
}

func (u *authUseCaseImpl) CurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	found, err := u.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return found, nil
}
