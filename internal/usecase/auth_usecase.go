package usecase

import (
	"errors"

	"vidshare/internal/entity"
	"vidshare/internal/repo/persistent"
	"vidshare/pkg/jwt"
	"vidshare/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(username, email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userUseCase UserUseCase
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(
	userUseCase UserUseCase,
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userUseCase: userUseCase,
		userRepo:    userRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *authUseCase) Register(username, email, password string) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	}
	if exists, err := uc.userRepo.ExistsByUsername(username); err == nil && exists {
		return nil, "", ErrUsernameTaken
	}

	user, err := uc.userUseCase.Create(&entity.User{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		uc.logger.Error("Failed to register user %s: %v", username, err)
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Role.RoleName)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.RoleName
	}
	token, err := uc.jwtService.GenerateToken(user.ID, roleName)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}
