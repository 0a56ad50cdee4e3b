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

type INotebookService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.NotebookResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NotebookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func toNotebookResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:        n.Id,
		Name:      n.Name,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (s *notebookService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, len(notebooks))
	for i, notebook := range notebooks {
		result[i] = toNotebookResponse(notebook)
	}
	return result, nil
}

func (s *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := req.Name
	if name == "" {
		name = DefaultNotebookName
	}
	color := req.Color
	if color == "" {
		color = DefaultNotebookColor
	}

	now := time.Now()
	notebook := entity.Notebook{
		Id:        uuid.New(),
		Name:      name,
		Color:     color,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}

	return toNotebookResponse(&notebook), nil
}

func (s *notebookService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Scoped by owner: a notebook belonging to someone else looks exactly
	// like a missing one.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.NotFound("notebook not found")
	}

	return toNotebookResponse(notebook), nil
}

func (s *notebookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.NotFound("notebook not found")
	}

	if req.Name != nil {
		notebook.Name = *req.Name
	}
	if req.Color != nil {
		notebook.Color = *req.Color
	}
	// updated_at advances on every successful update call, even when the
	// body changed nothing.
	notebook.UpdatedAt = time.Now()

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, err
	}

	return toNotebookResponse(notebook), nil
}

func (s *notebookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notebook == nil {
		return serverutils.NotFound("notebook not found")
	}

	// Guard and delete share one transaction so two concurrent deletes
	// cannot both pass the last-notebook check.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	count, err := uow.NotebookRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if count <= 1 {
		return serverutils.Conflict("cannot delete the last notebook")
	}

	// Notes go with the notebook via the ON DELETE CASCADE constraint.
	if err := uow.NotebookRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("notebook", "notebook deleted", map[string]interface{}{
		"notebook_id": id,
		"user_id":     userId,
	})
	return nil
}
