package persistent

import (
	"vidshare/internal/entity"
	"vidshare/internal/model"
)

func ToRoleEntity(m *model.RoleModel) *entity.Role {
	if m == nil {
		return nil
	}

	return &entity.Role{
		ID:       m.ID,
		RoleName: m.RoleName,
	}
}

func ToRoleModel(e *entity.Role) *model.RoleModel {
	if e == nil {
		return nil
	}

	return &model.RoleModel{
		ID:       e.ID,
		RoleName: e.RoleName,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:               m.ID,
		Username:         m.Username,
		Email:            m.Email,
		Password:         m.Password,
		RegistrationDate: m.RegistrationDate,
		AvatarURL:        m.AvatarURL,
	}
	if m.Role.ID != "" || m.RoleID != "" {
		role := m.Role
		if role.ID == "" {
			role.ID = m.RoleID
		}
		user.Role = ToRoleEntity(&role)
	}
	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	m := &model.UserModel{
		ID:               e.ID,
		Username:         e.Username,
		Email:            e.Email,
		Password:         e.Password,
		RegistrationDate: e.RegistrationDate,
		AvatarURL:        e.AvatarURL,
	}
	if e.Role != nil {
		m.RoleID = e.Role.ID
	}
	return m
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:   m.ID,
		Name: m.Name,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:   e.ID,
		Name: e.Name,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	video := &entity.Video{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		UploadDate:      m.UploadDate,
		DurationSeconds: m.DurationSeconds,
		URL:             m.URL,
		ThumbnailURL:    m.ThumbnailURL,
		UploaderID:      m.UploaderID,
		CategoryID:      m.CategoryID,
	}
	if m.Uploader.ID != "" {
		video.Uploader = ToUserEntity(&m.Uploader)
		video.Uploader.Password = ""
	}
	if m.Category.ID != "" {
		video.Category = ToCategoryEntity(&m.Category)
	}
	return video
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		UploadDate:      e.UploadDate,
		DurationSeconds: e.DurationSeconds,
		URL:             e.URL,
		ThumbnailURL:    e.ThumbnailURL,
		UploaderID:      e.UploaderID,
		CategoryID:      e.CategoryID,
	}
}

func ToRatingEntity(m *model.VideoRatingModel) *entity.VideoRating {
	if m == nil {
		return nil
	}

	return &entity.VideoRating{
		VideoID:   m.VideoID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToRatingModel(e *entity.VideoRating) *model.VideoRatingModel {
	if e == nil {
		return nil
	}

	return &model.VideoRatingModel{
		VideoID: e.VideoID,
		UserID:  e.UserID,
		Rating:  e.Rating,
	}
}
