package mapper

import (
	"testing"
	"time"

	"verses-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotebookMapper_RoundTrip(t *testing.T) {
	m := NewNotebookMapper()

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	e := &entity.Notebook{
		Id:        uuid.New(),
		Name:      "Work",
		Color:     "#112233",
		UserId:    uuid.New(),
		CreatedAt: created,
		UpdatedAt: updated,
	}

	got := m.ToEntity(m.ToModel(e))
	assert.Equal(t, e, got)
}

func TestNotebookMapper_NilSafe(t *testing.T) {
	m := NewNotebookMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestNoteMapper_RoundTrip(t *testing.T) {
	m := NewNoteMapper()

	now := time.Now().Truncate(time.Second)
	e := &entity.Note{
		Id:         uuid.New(),
		Title:      "t",
		Content:    "c",
		NotebookId: uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	got := m.ToEntity(m.ToModel(e))
	assert.Equal(t, e, got)
}

func TestUserMapper_RoundTrip(t *testing.T) {
	m := NewUserMapper()

	e := &entity.User{
		Id:           uuid.New(),
		Email:        "alice@x.com",
		Username:     "alice",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now().Truncate(time.Second),
	}

	got := m.ToEntity(m.ToModel(e))
	assert.Equal(t, e, got)
}
