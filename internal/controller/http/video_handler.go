package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"vidshare/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase  usecase.VideoUseCase
	ratingUseCase usecase.RatingUseCase
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, ratingUseCase usecase.RatingUseCase) *VideoHandler {
	return &VideoHandler{
		videoUseCase:  videoUseCase,
		ratingUseCase: ratingUseCase,
	}
}

type RateVideoRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// List godoc
// @Summary      List videos
// @Tags         videos
// @Produce      json
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Param        category_id query string false "Filter by category"
// @Success      200  {object}  map[string]interface{}
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	videos, err := h.videoUseCase.List(limit, offset, c.Query("category_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// GetByID godoc
// @Summary      Get a video by ID
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetByID(c *gin.Context) {
	video, err := h.videoUseCase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, video)
}

// Search godoc
// @Summary      Search videos by title
// @Tags         videos
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /videos/search [get]
func (h *VideoHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	videos, err := h.videoUseCase.Search(query, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// Upload godoc
// @Summary      Upload a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string false "Description"
// @Param        duration_seconds formData int false "Duration in seconds"
// @Param        category_id formData string true "Category ID"
// @Param        media formData file true "Video file"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	title := c.PostForm("title")
	categoryID := c.PostForm("category_id")
	if title == "" || categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and category_id are required"})
		return
	}
	duration, _ := strconv.Atoi(c.PostForm("duration_seconds"))

	mediaFile, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	media, err := mediaFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer media.Close()

	input := usecase.UploadVideoInput{
		Title:           title,
		Description:     c.PostForm("description"),
		DurationSeconds: duration,
		CategoryID:      categoryID,
		UploaderID:      c.GetString("user_id"),
		Media:           media,
		MediaExt:        filepath.Ext(mediaFile.Filename),
		MediaType:       mediaFile.Header.Get("Content-Type"),
	}
	if input.MediaType == "" {
		input.MediaType = "video/mp4"
	}

	if thumbnailFile, err := c.FormFile("thumbnail"); err == nil {
		thumbnail, err := thumbnailFile.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process thumbnail"})
			return
		}
		defer thumbnail.Close()

		input.Thumbnail = thumbnail
		input.ThumbnailExt = filepath.Ext(thumbnailFile.Filename)
		input.ThumbnailType = thumbnailFile.Header.Get("Content-Type")
		if input.ThumbnailType == "" {
			input.ThumbnailType = "image/jpeg"
		}
	}

	video, err := h.videoUseCase.Upload(input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrVideoExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, video)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         videos
// @Produce      json
// @Success      200  {array}  entity.Category
// @Router       /categories [get]
func (h *VideoHandler) ListCategories(c *gin.Context) {
	categories, err := h.videoUseCase.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Rate godoc
// @Summary      Rate a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body RateVideoRequest true "Rating value"
// @Success      200  {object}  entity.VideoRating
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/ratings [post]
func (h *VideoHandler) Rate(c *gin.Context) {
	var req RateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingUseCase.Rate(c.Param("id"), c.GetString("user_id"), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		case errors.Is(err, usecase.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}

// ListRatings godoc
// @Summary      List ratings for a video
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /videos/{id}/ratings [get]
func (h *VideoHandler) ListRatings(c *gin.Context) {
	videoID := c.Param("id")

	ratings, err := h.ratingUseCase.ListByVideo(videoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	average, count, err := h.ratingUseCase.Average(videoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings, "count": count, "average": average})
}
