package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Name  string `json:"name" validate:"omitempty,max=255"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateNotebookRequest uses pointers for partial updates: nil means
// "keep the current value".
type UpdateNotebookRequest struct {
	Id    uuid.UUID `json:"-"`
	Name  *string   `json:"name" validate:"omitempty,max=255"`
	Color *string   `json:"color" validate:"omitempty,hexcolor"`
}

type NotebookResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
