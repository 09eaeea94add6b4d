package model

import "time"

type VideoRatingModel struct {
	VideoID   string    `gorm:"type:uuid;primaryKey" json:"video_id"`
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VideoRatingModel) TableName() string {
	return "video_ratings"
}
