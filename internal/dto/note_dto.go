package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title      string    `json:"title" validate:"required,max=255"`
	Content    string    `json:"content"`
	NotebookId uuid.UUID `json:"notebook_id" validate:"required"`
}

// UpdateNoteRequest uses pointers for partial updates. A non-nil NotebookId
// reassigns the note to another notebook owned by the same user.
type UpdateNoteRequest struct {
	Id         uuid.UUID  `json:"-"`
	Title      *string    `json:"title" validate:"omitempty,max=255"`
	Content    *string    `json:"content"`
	NotebookId *uuid.UUID `json:"notebook_id"`
}

type NoteResponse struct {
	Id         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	NotebookId uuid.UUID `json:"notebook_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
