package services

import (
	"context"
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
	"github.com/Adfay-Inc/Puntus/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	create     func(ctx context.Context, user *models.User) error
	getByEmail func(ctx context.Context, email string) (*models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.create != nil {
		return s.create(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, repositories.ErrUserNotFound
}

func TestRegister(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("hashes the password and defaults to creator role", func(t *testing.T) {
		var created *models.User
		repo := &stubUserRepo{
			create: func(ctx context.Context, user *models.User) error {
				created = user
				return nil
			},
		}
		svc := NewAuthService(repo, secret)

		user, err := svc.Register(context.Background(), RegisterInput{
			Nickname: "caster",
			Email:    "caster@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, models.RoleCreator, user.Role)
		assert.NotEqual(t, "supersecret", user.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("supersecret", user.PasswordHash))
	})

	t.Run("short passwords are rejected", func(t *testing.T) {
		svc := NewAuthService(&stubUserRepo{}, secret)

		_, err := svc.Register(context.Background(), RegisterInput{
			Nickname: "caster",
			Email:    "caster@example.com",
			Password: "short",
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		svc := NewAuthService(&stubUserRepo{}, secret)

		_, err := svc.Register(context.Background(), RegisterInput{
			Nickname: "caster",
			Email:    "not-an-email",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("email conflicts surface as such", func(t *testing.T) {
		repo := &stubUserRepo{
			create: func(ctx context.Context, user *models.User) error {
				return repositories.ErrUserEmailConflict
			},
		}
		svc := NewAuthService(repo, secret)

		_, err := svc.Register(context.Background(), RegisterInput{
			Nickname: "caster",
			Email:    "caster@example.com",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, ErrUserEmailConflict)
	})
}

func TestLogin(t *testing.T) {
	secret := []byte("test-secret")
	hash, err := utils.HashPassword("supersecret")
	if err != nil {
		t.Fatal(err)
	}

	repo := &stubUserRepo{
		getByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           1,
				Email:        email,
				PasswordHash: hash,
				Role:         models.RoleCreator,
			}, nil
		},
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		svc := NewAuthService(repo, secret)

		token, user, err := svc.Login(context.Background(), LoginInput{
			Email:    "caster@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc := NewAuthService(repo, secret)

		_, _, err := svc.Login(context.Background(), LoginInput{
			Email:    "caster@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		svc := NewAuthService(&stubUserRepo{}, secret)

		_, _, err := svc.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
