package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID              string        `gorm:"type:uuid;primary_key" json:"id"`
	Title           string        `gorm:"type:varchar(255);not null" json:"title"`
	Description     string        `gorm:"type:text" json:"description"`
	UploadDate      time.Time     `json:"upload_date"`
	DurationSeconds int           `gorm:"default:0" json:"duration_seconds"`
	URL             string        `gorm:"type:varchar(500);uniqueIndex;not null" json:"url"`
	ThumbnailURL    string        `gorm:"type:varchar(500)" json:"thumbnail_url"`
	UploaderID      string        `gorm:"type:uuid;not null;index" json:"uploader_id"`
	Uploader        UserModel     `gorm:"foreignKey:UploaderID" json:"uploader"`
	CategoryID      string        `gorm:"type:uuid;not null;index" json:"category_id"`
	Category        CategoryModel `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
