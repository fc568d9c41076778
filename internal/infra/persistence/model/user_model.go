package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the contact columns of the 'users' table owned by the identity service.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(32)"`
	Locale    string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	Devices []UserDeviceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
