package model

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null;default:'Notebook'"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#8B5A3C'"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Notes     []Note    `gorm:"foreignKey:NotebookId;constraint:OnDelete:CASCADE"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
