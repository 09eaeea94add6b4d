package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"vidshare/internal/entity"
	"vidshare/internal/repo/persistent"
	"vidshare/pkg/logger"
	"vidshare/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ChangePasswordStatus tells callers apart between a missing account and a
// failed current-password check.
type ChangePasswordStatus string

const (
	PasswordChanged      ChangePasswordStatus = "changed"
	PasswordWrongCurrent ChangePasswordStatus = "wrong_current_password"
	PasswordUserNotFound ChangePasswordStatus = "user_not_found"
)

type UserUseCase interface {
	FindByEmail(email string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	FindAll() ([]*entity.User, error)
	Create(user *entity.User) (*entity.User, error)
	Update(user *entity.User) (*entity.User, error)
	UpdateRole(userID, roleName string) (*entity.User, error)
	ChangePassword(userID, currentPassword, newPassword string) (ChangePasswordStatus, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
	Delete(id string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	roleRepo persistent.RoleRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	roleRepo persistent.RoleRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

func (uc *userUseCase) FindByEmail(email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) FindByID(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) FindAll() ([]*entity.User, error) {
	return uc.userRepo.List()
}

// Create hashes the password, fills in registration date and avatar defaults and
// resolves the role reference: role with an id resolves by id, role with only a
// name resolves by name, no role at all defaults to ROLE_USER.
func (uc *userUseCase) Create(user *entity.User) (*entity.User, error) {
	if user.Password == "" {
		return nil, ErrPasswordRequired
	}

	if user.RegistrationDate.IsZero() {
		user.RegistrationDate = time.Now()
	}
	if user.AvatarURL == "" {
		user.AvatarURL = entity.DefaultAvatarPath
	}

	role, err := uc.resolveRole(user.Role)
	if err != nil {
		return nil, err
	}
	user.Role = role

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		uc.logger.Error("Failed to create user %s: %v", user.Username, err)
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) resolveRole(role *entity.Role) (*entity.Role, error) {
	var (
		resolved *entity.Role
		err      error
	)
	switch {
	case role == nil:
		resolved, err = uc.roleRepo.GetByName(entity.RoleUser)
	case role.ID != "":
		resolved, err = uc.roleRepo.GetByID(role.ID)
	default:
		resolved, err = uc.roleRepo.GetByName(role.RoleName)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return resolved, nil
}

// Update re-hashes the password only when it differs from the stored hash, so a
// round-tripped record does not get double-hashed.
func (uc *userUseCase) Update(user *entity.User) (*entity.User, error) {
	stored, err := uc.userRepo.GetByID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Password != stored.Password {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if user.Role == nil {
		user.Role = stored.Role
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole replaces only the role reference and leaves every other field alone.
func (uc *userUseCase) UpdateRole(userID, roleName string) (*entity.User, error) {
	role, err := uc.roleRepo.GetByName(roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) ChangePassword(userID, currentPassword, newPassword string) (ChangePasswordStatus, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PasswordUserNotFound, nil
		}
		return PasswordUserNotFound, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return PasswordWrongCurrent, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return PasswordWrongCurrent, err
	}
	user.Password = string(hashedPassword)

	if err := uc.userRepo.Update(user); err != nil {
		return PasswordWrongCurrent, err
	}
	return PasswordChanged, nil
}

func (uc *userUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	// Resolve the user before touching S3 so an unknown id uploads nothing.
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Delete is unconditional here; the admin-account protection is endpoint policy.
func (uc *userUseCase) Delete(id string) error {
	return uc.userRepo.Delete(id)
}
