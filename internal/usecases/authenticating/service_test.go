package authenticating

import (
	"context"
	"errors"
	"testing"

	"github.com/lrlucasdurand-code/unify/infrastructure/repository/mocks"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository, *mocks.MockOrganizationRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	orgRepo := mocks.NewMockOrganizationRepository(ctrl)

	return &Service{userRepo: userRepo, orgRepo: orgRepo, secretKey: testSecret}, userRepo, orgRepo
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperava AuthError, recebeu %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("cria organização free e devolve token válido", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@acme.com").Return(nil, nil)
		userRepo.EXPECT().
			CreateWithOrganization(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User, org *domain.Organization) (*domain.User, error) {
				assert.Equal(t, domain.PlanFree, org.Plan)
				assert.Equal(t, "Acme", org.Name)
				assert.True(t, user.Active)
				assert.NotEqual(t, "Senha@123", user.PasswordHash)
				user.ID = 10
				user.OrganizationID = 4
				return user, nil
			})

		token, err := service.Register(ctx, &domain.RegisterRequest{
			Email:            " Ana@Acme.com ",
			Password:         "Senha@123",
			FullName:         "Ana",
			OrganizationName: "Acme",
		})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "ana@acme.com", claims.Subject)
		assert.Equal(t, 4, claims.OrganizationID)
		assert.Equal(t, 10, claims.UserID)
	})

	t.Run("email duplicado", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@acme.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.Register(ctx, &domain.RegisterRequest{Email: "ana@acme.com", Password: "x"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assertAuthCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("dados obrigatórios", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Register(ctx, &domain.RegisterRequest{Email: "ana@acme.com"})
		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()
	hash := hashPassword(t, "Senha@123")

	tests := []struct {
		name     string
		user     *domain.User
		repoErr  error
		password string
		wantCode string
	}{
		{
			name:     "sucesso",
			user:     &domain.User{ID: 1, Email: "ana@acme.com", PasswordHash: hash, Active: true, OrganizationID: 2},
			password: "Senha@123",
		},
		{
			name:     "senha incorreta",
			user:     &domain.User{ID: 1, Email: "ana@acme.com", PasswordHash: hash, Active: true},
			password: "errada",
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário inexistente",
			password: "Senha@123",
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário desativado",
			user:     &domain.User{ID: 1, Email: "ana@acme.com", PasswordHash: hash},
			password: "Senha@123",
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "falha no banco",
			repoErr:  errors.New("connection refused"),
			password: "Senha@123",
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _ := newTestService(t)
			userRepo.EXPECT().GetUserByEmail(ctx, "ana@acme.com").Return(tt.user, tt.repoErr)

			token, err := service.LoginUser(ctx, "ana@acme.com", tt.password)
			if tt.wantCode != "" {
				assertAuthCode(t, err, tt.wantCode)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 2, claims.OrganizationID)
			assert.WithinDuration(t, claims.IssuedAt.Add(tokenTTL), claims.ExpiresAt.Time, 0)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service, _, _ := newTestService(t)

	token, err := generateJWT(&domain.User{ID: 1, Email: "ana@acme.com"}, "outro-segredo")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("lixo")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_GetUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("superusuário aparece como admin", func(t *testing.T) {
		service, userRepo, orgRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 1).
			Return(&domain.User{ID: 1, Email: "root@unify.io", RoleID: domain.RoleAdmin, OrganizationID: 3}, nil)
		orgRepo.EXPECT().GetByID(ctx, 3).
			Return(&domain.Organization{ID: 3, Name: "Unify", Plan: domain.PlanGrowth}, nil)

		profile, err := service.GetUserProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "admin", profile.Role)
		assert.Equal(t, "Unify", profile.Organization)
		assert.Equal(t, domain.PlanGrowth, profile.Plan)
	})

	t.Run("usuário sem organização fica no free", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 2).
			Return(&domain.User{ID: 2, Email: "bob@acme.com", RoleID: domain.RoleClient}, nil)

		profile, err := service.GetUserProfile(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "user", profile.Role)
		assert.Equal(t, domain.PlanFree, profile.Plan)
		assert.Empty(t, profile.Organization)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 9).Return(nil, nil)

		_, err := service.GetUserProfile(ctx, 9)
		assertAuthCode(t, err, apiErrors.ErrUserNotFound)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		password string
		wantErr  bool
	}{
		{"Senha@123", false},
		{"curta1!", true},
		{"semmaiuscula1!", true},
		{"SEMMINUSCULA1!", true},
		{"SemNumero!!", true},
		{"SemEspecial123", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hash := hashPassword(t, "Senha@123")

	t.Run("atualiza hash", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hash}, nil)
		userRepo.EXPECT().UpdatePassword(ctx, 1, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, newHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("Nova@4567")))
				return nil
			})

		assert.NoError(t, service.ChangePassword(ctx, 1, "Senha@123", "Nova@4567"))
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hash}, nil)

		err := service.ChangePassword(ctx, 1, "errada", "Nova@4567")
		assertAuthCode(t, err, apiErrors.ErrInvalidCredentials)
	})

	t.Run("mesma senha", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hash}, nil)

		err := service.ChangePassword(ctx, 1, "Senha@123", "Senha@123")
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("senha fraca", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hash}, nil)

		err := service.ChangePassword(ctx, 1, "Senha@123", "fraca")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
