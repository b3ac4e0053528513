package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "test-secret"}}

	t.Run("Cria usuário com senha hasheada e papel padrão", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("novo@teste.com").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "senha123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				assert.Equal(t, domain.RoleViewer, user.RoleID)
				assert.False(t, user.Active)
				user.ID = 1
				return user, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:         "Usuário Novo",
			Email:        " Novo@Teste.com ",
			PasswordHash: "senha123",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, "novo@teste.com", created.Email)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("existe@teste.com").
			Return(&domain.User{ID: 2, Email: "existe@teste.com"}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Outro",
			Email:        "existe@teste.com",
			PasswordHash: "senha123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		_, err := service.CreateUser(&domain.User{Email: "so@email.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "test-secret"}}

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)

	activeUser := &domain.User{
		ID:           1,
		Name:         "Usuário",
		Email:        "user@teste.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	}

	t.Run("Login válido devolve token com as claims do usuário", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("user@teste.com").Return(activeUser, nil)

		token, err := service.LoginUser("User@Teste.com", "senha123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("user@teste.com").Return(activeUser, nil)

		_, err := service.LoginUser("user@teste.com", "senha-errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Conta desativada", func(t *testing.T) {
		disabled := *activeUser
		disabled.Active = false

		mockUserRepo.EXPECT().GetUserByEmail("user@teste.com").Return(&disabled, nil)

		_, err := service.LoginUser("user@teste.com", "senha123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ninguem@teste.com").Return(nil, nil)

		_, err := service.LoginUser("ninguem@teste.com", "senha123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service := &Service{cfg: &config.Config{SecretKey: "test-secret"}}

	_, err := service.ValidateToken("token-que-nao-e-jwt")

	assert.Error(t, err)
}
