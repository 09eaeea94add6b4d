package seed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vidshare/internal/entity"
	"vidshare/internal/repo/persistent"
	"vidshare/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder reconciles the store against the fixed baseline: the two well-known
// roles, the canonical admin account, the starter categories and the sample
// video catalog. Run is idempotent and safe to call at any time, not only at
// process start; it never deletes anything.
type Seeder struct {
	roleRepo     persistent.RoleRepository
	userRepo     persistent.UserRepository
	categoryRepo persistent.CategoryRepository
	videoRepo    persistent.VideoRepository
	logger       *logger.Logger
}

func NewSeeder(
	roleRepo persistent.RoleRepository,
	userRepo persistent.UserRepository,
	categoryRepo persistent.CategoryRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) *Seeder {
	return &Seeder{
		roleRepo:     roleRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}
}

// Run executes the four reconciliation steps in order. A missing admin role at
// admin-account creation time is unrecoverable and aborts the run; a missing
// admin user or empty category store only skips the sample-video step.
func (s *Seeder) Run() error {
	if err := s.ensureRoles(); err != nil {
		return fmt.Errorf("seeding roles: %w", err)
	}
	if err := s.ensureAdminAccount(); err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}
	if err := s.ensureCategories(); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}
	if err := s.ensureSampleVideos(); err != nil {
		return fmt.Errorf("seeding sample videos: %w", err)
	}
	return nil
}

func (s *Seeder) ensureRoles() error {
	count, err := s.roleRepo.Count()
	if err != nil {
		return err
	}

	if count == 0 {
		if err := s.roleRepo.Create(&entity.Role{RoleName: entity.RoleUser}); err != nil {
			return err
		}
		if err := s.roleRepo.Create(&entity.Role{RoleName: entity.RoleAdmin}); err != nil {
			return err
		}
		s.logger.Info("Default roles created")
		return nil
	}

	// Some roles exist; repair whichever of the two well-known ones is missing.
	for _, name := range []string{entity.RoleUser, entity.RoleAdmin} {
		_, err := s.roleRepo.GetByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.roleRepo.Create(&entity.Role{RoleName: name}); err != nil {
			return err
		}
		s.logger.Info("Added missing role %s", name)
	}
	return nil
}

func (s *Seeder) ensureAdminAccount() error {
	exists, err := s.userRepo.ExistsByUsername(AdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	adminRole, err := s.roleRepo.GetByName(entity.RoleAdmin)
	if err != nil {
		// Step one guarantees the role; reaching here means the store is in an
		// unrecoverable state and startup must not continue.
		return fmt.Errorf("admin role not found: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Username:         AdminUsername,
		Email:            AdminEmail,
		Password:         string(hashedPassword),
		RegistrationDate: time.Now(),
		AvatarURL:        entity.DefaultAvatarPath,
		Role:             adminRole,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return err
	}
	s.logger.Info("Admin account created with username: %s", AdminUsername)
	return nil
}

// ensureCategories is all-or-nothing: any pre-existing categories disable the
// step entirely, no per-item sync happens.
func (s *Seeder) ensureCategories() error {
	count, err := s.categoryRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		if err := s.categoryRepo.Create(&entity.Category{Name: name}); err != nil {
			return err
		}
	}
	s.logger.Info("Default categories created")
	return nil
}

func (s *Seeder) ensureSampleVideos() error {
	admin, err := s.userRepo.GetByUsername(AdminUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Admin user not found, skipping sample video initialization")
			return nil
		}
		return err
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		s.logger.Warn("No categories found, skipping sample video initialization")
		return nil
	}

	now := time.Now()
	created := 0
	for _, sample := range SampleVideos {
		exists, err := s.videoRepo.ExistsByURL(sample.URL)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		category := s.findCategoryByName(categories, sample.Category)
		video := &entity.Video{
			Title:           sample.Title,
			Description:     sample.Description,
			UploadDate:      now.Add(-sample.UploadOffset),
			DurationSeconds: sample.Duration,
			URL:             sample.URL,
			ThumbnailURL:    sample.ThumbnailURL,
			UploaderID:      admin.ID,
			CategoryID:      category.ID,
		}
		if err := s.videoRepo.Create(video); err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		s.logger.Info("Created %d missing sample videos", created)
	} else {
		s.logger.Info("All sample videos already exist")
	}
	return nil
}

func (s *Seeder) findCategoryByName(categories []*entity.Category, name string) *entity.Category {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	// Fall back to the first stored category, but loudly: a miss here means the
	// catalog names and the category store have drifted apart.
	s.logger.Warn("Category %q not found, falling back to %q", name, categories[0].Name)
	return categories[0]
}
