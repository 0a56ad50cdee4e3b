package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByNoteID qualifies the column so it stays unambiguous when combined
// with OwnedThroughNotebook's join.
type ByNoteID struct {
	ID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.id = ?", s.ID)
}

type ByNotebookID struct {
	NotebookID uuid.UUID
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notebook_id = ?", s.NotebookID)
}

// OwnedThroughNotebook scopes notes to a user by joining through the parent
// notebook. Notes carry no user_id column; ownership is always transitive.
type OwnedThroughNotebook struct {
	UserID uuid.UUID
}

func (s OwnedThroughNotebook) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN notebooks ON notebooks.id = notes.notebook_id").
		Where("notebooks.user_id = ?", s.UserID)
}
