package persistent

import (
	"vidshare/internal/entity"
	"vidshare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	ExistsByURL(url string) (bool, error)
	List(limit, offset int, categoryID string) ([]*entity.Video, error)
	SearchByTitle(query string, limit, offset int) ([]*entity.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(videoModel)
	if result.Error != nil {
		return result.Error
	}
	// Zero affected rows means a video with this URL already exists.
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Preload("Uploader").Preload("Uploader.Role").Preload("Category").
		Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) ExistsByURL(url string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.VideoModel{}).Where("url = ?", url).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *videoRepository) List(limit, offset int, categoryID string) ([]*entity.Video, error) {
	query := r.db.Preload("Category").Order("upload_date DESC").Limit(limit).Offset(offset)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var videoModels []model.VideoModel
	if err := query.Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) SearchByTitle(query string, limit, offset int) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.Preload("Category").
		Where("title ILIKE ?", "%"+query+"%").
		Order("upload_date DESC").Limit(limit).Offset(offset).
		Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}
