package seed

import (
	"strings"
	"testing"

	"vidshare/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vidshare/pkg/logger"
)

type fakeRoleRepo struct {
	roles []*entity.Role
}

func (f *fakeRoleRepo) Count() (int64, error) {
	return int64(len(f.roles)), nil
}

func (f *fakeRoleRepo) Create(role *entity.Role) error {
	for _, r := range f.roles {
		if r.RoleName == role.RoleName {
			*role = *r
			return nil
		}
	}
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	stored := *role
	f.roles = append(f.roles, &stored)
	return nil
}

func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.RoleName == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			stored := *user
			f.users[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Delete(id string) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	_, err := f.GetByUsername(username)
	return err == nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	return f.users, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Count() (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	for _, c := range f.categories {
		if c.Name == category.Name {
			*category = *c
			return nil
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	stored := *category
	f.categories = append(f.categories, &stored)
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	return f.categories, nil
}

type fakeVideoRepo struct {
	videos []*entity.Video
	writes int
}

func (f *fakeVideoRepo) Create(video *entity.Video) error {
	f.writes++
	for _, v := range f.videos {
		if v.URL == video.URL {
			return gorm.ErrDuplicatedKey
		}
	}
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	stored := *video
	f.videos = append(f.videos, &stored)
	return nil
}

func (f *fakeVideoRepo) GetByID(id string) (*entity.Video, error) {
	for _, v := range f.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideoRepo) ExistsByURL(url string) (bool, error) {
	for _, v := range f.videos {
		if v.URL == url {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVideoRepo) List(limit, offset int, categoryID string) ([]*entity.Video, error) {
	return f.videos, nil
}

func (f *fakeVideoRepo) SearchByTitle(query string, limit, offset int) ([]*entity.Video, error) {
	return f.videos, nil
}

func newTestSeeder() (*Seeder, *fakeRoleRepo, *fakeUserRepo, *fakeCategoryRepo, *fakeVideoRepo) {
	roleRepo := &fakeRoleRepo{}
	userRepo := &fakeUserRepo{}
	categoryRepo := &fakeCategoryRepo{}
	videoRepo := &fakeVideoRepo{}
	s := NewSeeder(roleRepo, userRepo, categoryRepo, videoRepo, logger.New())
	return s, roleRepo, userRepo, categoryRepo, videoRepo
}

func TestRun_EmptyStore(t *testing.T) {
	s, roleRepo, userRepo, categoryRepo, videoRepo := newTestSeeder()

	err := s.Run()
	assert.NoError(t, err)

	assert.Len(t, roleRepo.roles, DefaultRoleCount)
	assert.Len(t, userRepo.users, 1)
	assert.Len(t, categoryRepo.categories, CategoryCount)
	assert.Len(t, videoRepo.videos, len(SampleVideos))

	admin := userRepo.users[0]
	assert.Equal(t, AdminUsername, admin.Username)
	assert.Equal(t, AdminEmail, admin.Email)
	assert.Equal(t, entity.RoleAdmin, admin.Role.RoleName)
	assert.Equal(t, entity.DefaultAvatarPath, admin.AvatarURL)

	// Every sample video is uploaded by the admin with its named category.
	for i, video := range videoRepo.videos {
		assert.Equal(t, admin.ID, video.UploaderID)
		category, err := categoryRepo.GetByID(video.CategoryID)
		assert.NoError(t, err)
		assert.True(t, strings.EqualFold(SampleVideos[i].Category, category.Name))
	}
}

func TestRun_Idempotent(t *testing.T) {
	s, roleRepo, userRepo, categoryRepo, videoRepo := newTestSeeder()

	assert.NoError(t, s.Run())

	adminID := userRepo.users[0].ID
	roleIDs := []string{roleRepo.roles[0].ID, roleRepo.roles[1].ID}

	assert.NoError(t, s.Run())

	assert.Len(t, roleRepo.roles, DefaultRoleCount)
	assert.Len(t, userRepo.users, 1)
	assert.Len(t, categoryRepo.categories, CategoryCount)
	assert.Len(t, videoRepo.videos, len(SampleVideos))

	// Existing rows are untouched, not recreated.
	assert.Equal(t, adminID, userRepo.users[0].ID)
	assert.Equal(t, roleIDs[0], roleRepo.roles[0].ID)
	assert.Equal(t, roleIDs[1], roleRepo.roles[1].ID)
}

func TestRun_RepairsMissingRole(t *testing.T) {
	s, roleRepo, _, _, _ := newTestSeeder()

	existing := &entity.Role{RoleName: entity.RoleUser}
	assert.NoError(t, roleRepo.Create(existing))

	assert.NoError(t, s.Run())

	assert.Len(t, roleRepo.roles, DefaultRoleCount)
	kept, err := roleRepo.GetByName(entity.RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, kept.ID)

	_, err = roleRepo.GetByName(entity.RoleAdmin)
	assert.NoError(t, err)
}

func TestRun_RecreatesDeletedSampleVideo(t *testing.T) {
	s, _, _, _, videoRepo := newTestSeeder()

	assert.NoError(t, s.Run())

	// Operator removes one video; a later run re-adds only that one.
	removed := videoRepo.videos[3].URL
	videoRepo.videos = append(videoRepo.videos[:3], videoRepo.videos[4:]...)

	assert.NoError(t, s.Run())

	assert.Len(t, videoRepo.videos, len(SampleVideos))
	exists, err := videoRepo.ExistsByURL(removed)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestEnsureSampleVideos_SkipsWithoutAdmin(t *testing.T) {
	s, _, _, categoryRepo, videoRepo := newTestSeeder()

	assert.NoError(t, categoryRepo.Create(&entity.Category{Name: "Music"}))

	assert.NoError(t, s.ensureSampleVideos())

	assert.Zero(t, videoRepo.writes)
	assert.Empty(t, videoRepo.videos)
}

func TestEnsureSampleVideos_SkipsWithoutCategories(t *testing.T) {
	s, roleRepo, userRepo, _, videoRepo := newTestSeeder()

	assert.NoError(t, roleRepo.Create(&entity.Role{RoleName: entity.RoleAdmin}))
	assert.NoError(t, s.ensureAdminAccount())
	assert.Len(t, userRepo.users, 1)

	assert.NoError(t, s.ensureSampleVideos())

	assert.Zero(t, videoRepo.writes)
	assert.Empty(t, videoRepo.videos)
}

func TestEnsureAdminAccount_MissingAdminRoleIsFatal(t *testing.T) {
	s, _, userRepo, _, _ := newTestSeeder()

	err := s.ensureAdminAccount()

	assert.Error(t, err)
	assert.Empty(t, userRepo.users)
}

func TestEnsureAdminAccount_PasswordIsHashed(t *testing.T) {
	s, roleRepo, userRepo, _, _ := newTestSeeder()

	assert.NoError(t, roleRepo.Create(&entity.Role{RoleName: entity.RoleAdmin}))
	assert.NoError(t, s.ensureAdminAccount())

	admin := userRepo.users[0]
	assert.NotEqual(t, AdminPassword, admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(AdminPassword)))
}

func TestEnsureCategories_AllOrNothing(t *testing.T) {
	s, _, _, categoryRepo, _ := newTestSeeder()

	assert.NoError(t, categoryRepo.Create(&entity.Category{Name: "Gaming"}))

	assert.NoError(t, s.ensureCategories())

	// A non-empty category store disables the step entirely.
	assert.Len(t, categoryRepo.categories, 1)
	assert.Equal(t, "Gaming", categoryRepo.categories[0].Name)
}

func TestFindCategoryByName_FallsBackToFirst(t *testing.T) {
	s, _, _, _, _ := newTestSeeder()

	categories := []*entity.Category{
		{ID: "c1", Name: "Gaming"},
		{ID: "c2", Name: "Cooking"},
	}

	found := s.findCategoryByName(categories, "music")
	assert.Equal(t, "c1", found.ID)

	matched := s.findCategoryByName(categories, "COOKING")
	assert.Equal(t, "c2", matched.ID)
}
