package persistent

import (
	"vidshare/internal/entity"
	"vidshare/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *entity.VideoRating) error
	ListByVideo(videoID string) ([]*entity.VideoRating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert stores the rating, replacing the caller's previous rating of the same video.
func (r *ratingRepository) Upsert(rating *entity.VideoRating) error {
	ratingModel := ToRatingModel(rating)
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(ratingModel).Error; err != nil {
		return err
	}
	*rating = *ToRatingEntity(ratingModel)
	return nil
}

func (r *ratingRepository) ListByVideo(videoID string) ([]*entity.VideoRating, error) {
	var ratingModels []model.VideoRatingModel
	if err := r.db.Where("video_id = ?", videoID).Find(&ratingModels).Error; err != nil {
		return nil, err
	}

	ratings := make([]*entity.VideoRating, len(ratingModels))
	for i := range ratingModels {
		ratings[i] = ToRatingEntity(&ratingModels[i])
	}
	return ratings, nil
}
