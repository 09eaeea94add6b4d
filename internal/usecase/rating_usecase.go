package usecase

import (
	"errors"

	"vidshare/internal/entity"
	"vidshare/internal/repo/persistent"

	"gorm.io/gorm"
)

type RatingUseCase interface {
	Rate(videoID, userID string, rating int) (*entity.VideoRating, error)
	ListByVideo(videoID string) ([]*entity.VideoRating, error)
	Average(videoID string) (float64, int, error)
}

type ratingUseCase struct {
	ratingRepo persistent.RatingRepository
	videoRepo  persistent.VideoRepository
}

func NewRatingUseCase(ratingRepo persistent.RatingRepository, videoRepo persistent.VideoRepository) RatingUseCase {
	return &ratingUseCase{
		ratingRepo: ratingRepo,
		videoRepo:  videoRepo,
	}
}

func (uc *ratingUseCase) Rate(videoID, userID string, rating int) (*entity.VideoRating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	videoRating := &entity.VideoRating{
		VideoID: videoID,
		UserID:  userID,
		Rating:  rating,
	}
	if err := uc.ratingRepo.Upsert(videoRating); err != nil {
		return nil, err
	}
	return videoRating, nil
}

func (uc *ratingUseCase) ListByVideo(videoID string) ([]*entity.VideoRating, error) {
	return uc.ratingRepo.ListByVideo(videoID)
}

func (uc *ratingUseCase) Average(videoID string) (float64, int, error) {
	ratings, err := uc.ratingRepo.ListByVideo(videoID)
	if err != nil {
		return 0, 0, err
	}
	if len(ratings) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings)), len(ratings), nil
}
