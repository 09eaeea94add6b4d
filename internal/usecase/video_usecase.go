package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"vidshare/internal/entity"
	"vidshare/internal/repo/persistent"
	"vidshare/pkg/logger"
	"vidshare/pkg/queue"
	"vidshare/pkg/s3"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const videoCacheTTL = 24 * time.Hour

type UploadVideoInput struct {
	Title           string
	Description     string
	DurationSeconds int
	CategoryID      string
	UploaderID      string
	Media           io.Reader
	MediaExt        string
	MediaType       string
	Thumbnail       io.Reader
	ThumbnailExt    string
	ThumbnailType   string
}

type VideoUseCase interface {
	Upload(input UploadVideoInput) (*entity.Video, error)
	GetByID(id string) (*entity.Video, error)
	List(limit, offset int, categoryID string) ([]*entity.Video, error)
	Search(query string, limit, offset int) ([]*entity.Video, error)
	ListCategories() ([]*entity.Category, error)
}

type videoUseCase struct {
	videoRepo    persistent.VideoRepository
	categoryRepo persistent.CategoryRepository
	s3Client     *s3.Client
	redisClient  *redis.Client
	queueClient  *queue.Client
	logger       *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	categoryRepo persistent.CategoryRepository,
	s3Client *s3.Client,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
		s3Client:     s3Client,
		redisClient:  redisClient,
		queueClient:  queueClient,
		logger:       logger,
	}
}

func (uc *videoUseCase) Upload(input UploadVideoInput) (*entity.Video, error) {
	if _, err := uc.categoryRepo.GetByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	mediaKey := fmt.Sprintf("videos/%s/%s%s", input.UploaderID, uuid.New().String(), input.MediaExt)
	mediaURL, err := uc.s3Client.UploadFile(mediaKey, input.Media, input.MediaType)
	if err != nil {
		uc.logger.Error("Failed to upload video media: %v", err)
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	var thumbnailURL string
	if input.Thumbnail != nil {
		thumbnailKey := fmt.Sprintf("thumbnails/%s/%s%s", input.UploaderID, uuid.New().String(), input.ThumbnailExt)
		thumbnailURL, err = uc.s3Client.UploadFile(thumbnailKey, input.Thumbnail, input.ThumbnailType)
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail: %v", err)
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
	}

	exists, err := uc.videoRepo.ExistsByURL(mediaURL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrVideoExists
	}

	video := &entity.Video{
		Title:           input.Title,
		Description:     input.Description,
		UploadDate:      time.Now(),
		DurationSeconds: input.DurationSeconds,
		URL:             mediaURL,
		ThumbnailURL:    thumbnailURL,
		UploaderID:      input.UploaderID,
		CategoryID:      input.CategoryID,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVideoExists
		}
		uc.logger.Error("Failed to create video %s: %v", video.Title, err)
		return nil, err
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":        "video_published",
				"video_id":    video.ID,
				"uploader_id": video.UploaderID,
				"title":       video.Title,
			}
			if err := uc.queueClient.PublishVideoPublished(task); err != nil {
				uc.logger.Error("Failed to publish video notification: %v", err)
			}
		}()
	}

	return video, nil
}

func (uc *videoUseCase) GetByID(id string) (*entity.Video, error) {
	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(context.Background(), videoCacheKey(id)).Result()
		if err == nil {
			var video entity.Video
			if err := json.Unmarshal([]byte(cached), &video); err == nil {
				return &video, nil
			}
		}
	}

	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(video); err == nil {
			uc.redisClient.Set(context.Background(), videoCacheKey(id), data, videoCacheTTL)
		}
	}

	return video, nil
}

func (uc *videoUseCase) List(limit, offset int, categoryID string) ([]*entity.Video, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.videoRepo.List(limit, offset, categoryID)
}

func (uc *videoUseCase) Search(query string, limit, offset int) ([]*entity.Video, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.videoRepo.SearchByTitle(query, limit, offset)
}

func (uc *videoUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

func videoCacheKey(id string) string {
	return fmt.Sprintf("video:%s", id)
}
