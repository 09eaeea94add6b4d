package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"vidshare/internal/entity"
	"vidshare/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const minPasswordLength = 6

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type RoleRequest struct {
	ID       string `json:"id"`
	RoleName string `json:"role_name"`
}

type CreateUserRequest struct {
	Username         string       `json:"username" binding:"required,min=3,max=50"`
	Email            string       `json:"email" binding:"required,email"`
	Password         string       `json:"password"`
	RegistrationDate *time.Time   `json:"registration_date"`
	AvatarURL        string       `json:"avatar_url"`
	Role             *RoleRequest `json:"role"`
}

type UpdateRoleRequest struct {
	RoleName string `json:"roleName"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("user_role") == entity.RoleAdmin
}

// FindByEmail godoc
// @Summary      Find user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Email"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/email/{email} [get]
func (h *UserHandler) FindByEmail(c *gin.Context) {
	user, err := h.userUseCase.FindByEmail(c.Param("email"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// FindAll godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.User
// @Router       /users [get]
func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.userUseCase.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, user := range users {
		user.Password = ""
	}
	c.JSON(http.StatusOK, users)
}

// FindByID godoc
// @Summary      Find user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) FindByID(c *gin.Context) {
	user, err := h.userUseCase.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary      Create a user
// @Description  Open endpoint; role defaults to ROLE_USER when the payload carries none
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	user := &entity.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	}
	if req.RegistrationDate != nil {
		user.RegistrationDate = *req.RegistrationDate
	}
	if req.Role != nil {
		user.Role = &entity.Role{ID: req.Role.ID, RoleName: req.Role.RoleName}
	}

	created, err := h.userUseCase.Create(user)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		// An unresolvable role is a configuration fault, not a client mistake.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created.Password = ""
	c.JSON(http.StatusCreated, created)
}

// UpdateRole godoc
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body UpdateRoleRequest true "Role name"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can update user roles"})
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoleName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role name is required"})
		return
	}

	user, err := h.userUseCase.UpdateRole(c.Param("id"), req.RoleName)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) || errors.Is(err, usecase.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Admin only; the canonical admin account can never be deleted
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can delete users"})
		return
	}

	user, err := h.userUseCase.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if user.Username == "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "The original admin account cannot be deleted"})
		return
	}

	if err := h.userUseCase.Delete(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ChangePassword godoc
// @Summary      Change a user's password
// @Description  Self-service; admins may change any account's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body ChangePasswordRequest true "Current and new password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	targetID := c.Param("id")

	if !isAdmin(c) && c.GetString("user_id") != targetID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only change your own password"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and new password are required"})
		return
	}

	if len(req.NewPassword) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 6 characters"})
		return
	}

	status, err := h.userUseCase.ChangePassword(targetID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch status {
	case usecase.PasswordChanged:
		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	case usecase.PasswordUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		// The caller already passed identity checks, so a failed verification is
		// a client error rather than an authorization one.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
	}
}

// UploadAvatar godoc
// @Summary      Upload a user avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        avatar formData file true "Avatar image file"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	targetID := c.Param("id")

	if !isAdmin(c) && c.GetString("user_id") != targetID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only change your own avatar"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Only jpg, jpeg, png, gif are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("avatars/%s/%s%s", targetID, uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	user, err := h.userUseCase.UploadAvatar(targetID, src, fileKey, contentType)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
