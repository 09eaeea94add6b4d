package usecase

import (
	"testing"

	"vidshare/internal/entity"
	"vidshare/pkg/jwt"
	"vidshare/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUseCase(userRepo *MockUserRepository, roleRepo *MockRoleRepository) (AuthUseCase, *jwt.Service) {
	log := logger.New()
	jwtService := jwt.NewService("test-secret-key")
	userUseCase := NewUserUseCase(userRepo, roleRepo, nil, log)
	return NewAuthUseCase(userUseCase, userRepo, jwtService, log), jwtService
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uc, jwtService := newAuthUseCase(userRepo, roleRepo)

	defaultRole := &entity.Role{ID: "role-1", RoleName: entity.RoleUser}

	userRepo.On("GetByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("ExistsByUsername", "alice").Return(false, nil)
	roleRepo.On("GetByName", entity.RoleUser).Return(defaultRole, nil)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	user, token, err := uc.Register("alice", "alice@example.com", "password123")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role.RoleName)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleUser, claims.Role)

	userRepo.AssertExpectations(t)
	roleRepo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uc, _ := newAuthUseCase(userRepo, roleRepo)

	existing := &entity.User{ID: "user-1", Email: "alice@example.com"}
	userRepo.On("GetByEmail", "alice@example.com").Return(existing, nil)

	_, _, err := uc.Register("alice", "alice@example.com", "password123")

	assert.ErrorIs(t, err, ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegister_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uc, _ := newAuthUseCase(userRepo, roleRepo)

	userRepo.On("GetByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("ExistsByUsername", "alice").Return(true, nil)

	_, _, err := uc.Register("alice", "alice@example.com", "password123")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uc, jwtService := newAuthUseCase(userRepo, roleRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &entity.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(hashed),
		Role:     &entity.Role{ID: "role-1", RoleName: entity.RoleUser},
	}

	userRepo.On("GetByEmail", "alice@example.com").Return(stored, nil)

	user, token, err := uc.Login("alice@example.com", "password123")

	assert.NoError(t, err)
	assert.Empty(t, user.Password)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)

	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uc, _ := newAuthUseCase(userRepo, roleRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &entity.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		Password: string(hashed),
	}

	userRepo.On("GetByEmail", "alice@example.com").Return(stored, nil)

	_, _, err := uc.Login("alice@example.com", "wrongpass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uc, _ := newAuthUseCase(userRepo, roleRepo)

	userRepo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := uc.Login("ghost@example.com", "password123")

	// The response must not reveal whether the account exists.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
