package entity

import "time"

type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	UploadDate      time.Time `json:"upload_date"`
	DurationSeconds int       `json:"duration_seconds"`
	// URL is the natural key: a video already exists iff a stored video has the same URL.
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	UploaderID   string    `json:"uploader_id"`
	Uploader     *User     `json:"uploader,omitempty"`
	CategoryID   string    `json:"category_id"`
	Category     *Category `json:"category,omitempty"`
}
