package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	RoleName string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
}

func (RoleModel) TableName() string {
	return "roles"
}

func (r *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
