package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/royalty-manager-api/internal/config"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	return NewService(userRepo, &config.Config{SecretKey: testSecret}), userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func requireAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperado AuthError, obtido %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("gera token válido", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&domain.User{
			ID:           7,
			Name:         "Ana",
			Email:        "ana@example.com",
			Active:       true,
			RoleID:       domain.RoleFinance,
			PasswordHash: hashPassword(t, "Senha@123"),
		}, nil)

		token, err := service.LoginUser(ctx, " Ana@Example.com ", "Senha@123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, domain.RoleFinance, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&domain.User{
			ID:           7,
			Active:       true,
			PasswordHash: hashPassword(t, "Senha@123"),
		}, nil)

		_, err := service.LoginUser(ctx, "ana@example.com", "outra")
		requireAuthCode(t, err, apiErrors.ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("usuário desativado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&domain.User{ID: 7}, nil)

		_, err := service.LoginUser(ctx, "ana@example.com", "Senha@123")
		requireAuthCode(t, err, apiErrors.ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(nil, nil)

		_, err := service.LoginUser(ctx, "ana@example.com", "Senha@123")
		requireAuthCode(t, err, apiErrors.ErrInvalidCredentials)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.LoginUser(ctx, "", "")
		requireAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("token expirado", func(t *testing.T) {
		claims := domain.Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		requireAuthCode(t, err, apiErrors.ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("assinatura de outra chave", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UserID: 1}).SignedString([]byte("outra"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		requireAuthCode(t, err, apiErrors.ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("perfil padrão e usuário inativo", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleViewer, u.RoleID)
			assert.False(t, u.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@123")))
			u.ID = 10
			return u, nil
		})

		user, err := service.CreateUser(ctx, &domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ANA@example.com",
			PasswordHash: "Senha@123",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Ana", Lastname: "S", Email: "ana@example.com", PasswordHash: "x"})
		requireAuthCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("perfil inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(nil, nil)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Ana", Lastname: "S", Email: "ana@example.com", PasswordHash: "x", RoleID: 9})
		requireAuthCode(t, err, apiErrors.ErrInvalidFormat)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("somente administrador", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 2).Return(&domain.User{ID: 2, RoleID: domain.RoleFinance}, nil)

		_, err := service.GenerateStrongPassword(ctx, 2, 5)
		requireAuthCode(t, err, apiErrors.ErrInsufficientPrivilege)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("senha gerada atende requisitos", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		userRepo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5}, nil)
		userRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(ctx, 1, 5)
		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := map[string]bool{
		"Curta@1":        false,
		"semmaiuscula@1": false,
		"SEMMINUSCULA@1": false,
		"SemNumero@@":    false,
		"SemEspecial12":  false,
		"Valida@123":     true,
	}

	for password, valid := range tests {
		err := service.ValidatePasswordStrength(password)
		if valid {
			assert.NoError(t, err, password)
			continue
		}
		assert.ErrorIs(t, err, ErrWeakPassword, password)
	}
}

func TestChangePasswordSamePassword(t *testing.T) {
	service, userRepo := newTestService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetUserByID(ctx, 3).Return(&domain.User{ID: 3, PasswordHash: hashPassword(t, "Valida@123")}, nil)

	err := service.ChangePassword(ctx, 3, "Valida@123", "Valida@123")
	assert.ErrorIs(t, err, ErrSamePassword)
}
