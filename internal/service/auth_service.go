package service

import (
	"context"
	"time"

	"verses-be/internal/config"
	"verses-be/internal/dto"
	"verses-be/internal/entity"
	"verses-be/internal/pkg/logger"
	"verses-be/internal/pkg/serverutils"
	"verses-be/internal/repository/specification"
	"verses-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultNotebookName  = "Notebook"
	DefaultNotebookColor = "#8B5A3C"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authCfg    config.AuthConfig
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authCfg:    authCfg,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// One combined uniqueness check: either column colliding yields the
	// same conflict, the caller never learns which one.
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrUsername{
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("email or username already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	// User and their default notebook are created atomically: a user
	// without a notebook must never exist.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	now := time.Now()
	defaultNotebook := &entity.Notebook{
		Id:        uuid.New(),
		Name:      DefaultNotebookName,
		Color:     DefaultNotebookColor,
		UserId:    user.Id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.NotebookRepository().Create(ctx, defaultNotebook); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.Unauthorized("incorrect username or password")
	}

	signedToken, err := s.issueToken(user.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user logged in", map[string]interface{}{
		"user_id": user.Id,
	})

	return &dto.LoginResponse{
		AccessToken: signedToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token was valid but its subject is gone (account deleted).
		return nil, serverutils.Unauthorized("user no longer exists")
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *authService) issueToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userId.String(),
		"exp": time.Now().Add(s.authCfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JWTSecret))
}
