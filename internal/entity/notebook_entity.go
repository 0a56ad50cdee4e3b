package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID
	Name      string
	Color     string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
