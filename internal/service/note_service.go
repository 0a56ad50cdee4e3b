package service

import (
	"context"
	"time"

	"verses-be/internal/dto"
	"verses-be/internal/entity"
	"verses-be/internal/pkg/logger"
	"verses-be/internal/pkg/serverutils"
	"verses-be/internal/repository/specification"
	"verses-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	GetAllInNotebook(ctx context.Context, userId uuid.UUID, notebookId uuid.UUID) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		NotebookId: n.NotebookId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// resolveNotebook checks that the notebook exists and belongs to the user.
func resolveNotebook(ctx context.Context, uow unitofwork.UnitOfWork, userId, notebookId uuid.UUID, notFoundMsg string) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: notebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.NotFound(notFoundMsg)
	}
	return notebook, nil
}

func (s *noteService) GetAllInNotebook(ctx context.Context, userId uuid.UUID, notebookId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveNotebook(ctx, uow, userId, notebookId, "notebook not found"); err != nil {
		return nil, err
	}

	// Most recently touched first
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebookId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		result[i] = toNoteResponse(note)
	}
	return result, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveNotebook(ctx, uow, userId, req.NotebookId, "notebook not found"); err != nil {
		return nil, err
	}

	now := time.Now()
	note := entity.Note{
		Id:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		NotebookId: req.NotebookId,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	return toNoteResponse(&note), nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.resolveNote(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.resolveNote(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.NotebookId != nil {
		// Reassignment only within the same user's notebooks; a foreign
		// target is reported as absent.
		if _, err := resolveNotebook(ctx, uow, userId, *req.NotebookId, "target notebook not found"); err != nil {
			return nil, err
		}
		note.NotebookId = *req.NotebookId
	}
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.resolveNote(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	s.logger.Info("note", "note deleted", map[string]interface{}{
		"note_id": id,
		"user_id": userId,
	})
	return nil
}

// resolveNote loads a note scoped to the user through its parent notebook.
// Missing and not-owned are the same NotFound.
func (s *noteService) resolveNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteID{ID: id},
		specification.OwnedThroughNotebook{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("note not found")
	}
	return note, nil
}
