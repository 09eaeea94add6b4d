package persistent

import (
	"vidshare/internal/entity"
	"vidshare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	Count() (int64, error)
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.RoleModel{}).Count(&count).Error
	return count, err
}

// Create inserts the role, silently keeping the existing row when another
// process already created the same role name.
func (r *roleRepository) Create(role *entity.Role) error {
	roleModel := ToRoleModel(role)
	if roleModel.ID == "" {
		roleModel.ID = uuid.New().String()
	}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_name"}},
		DoNothing: true,
	}).Create(roleModel).Error; err != nil {
		return err
	}
	*role = *ToRoleEntity(roleModel)
	return nil
}

func (r *roleRepository) GetByID(id string) (*entity.Role, error) {
	var roleModel model.RoleModel
	if err := r.db.Where("id = ?", id).First(&roleModel).Error; err != nil {
		return nil, err
	}
	return ToRoleEntity(&roleModel), nil
}

func (r *roleRepository) GetByName(name string) (*entity.Role, error) {
	var roleModel model.RoleModel
	if err := r.db.Where("role_name = ?", name).First(&roleModel).Error; err != nil {
		return nil, err
	}
	return ToRoleEntity(&roleModel), nil
}
