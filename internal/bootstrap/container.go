package bootstrap

import (
	"verses-be/internal/config"
	"verses-be/internal/controller"
	"verses-be/internal/pkg/logger"
	"verses-be/internal/pkg/serverutils"
	"verses-be/internal/repository/unitofwork"
	"verses-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	NotebookController controller.INotebookController
	NoteController     controller.INoteController

	// Shared middleware and facades
	JwtMiddleware fiber.Handler
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	jwtGuard := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	// 2. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth, sysLogger)
	notebookService := service.NewNotebookService(uowFactory, sysLogger)
	noteService := service.NewNoteService(uowFactory, sysLogger)

	// 3. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		NotebookController: controller.NewNotebookController(notebookService),
		NoteController:     controller.NewNoteController(noteService),

		JwtMiddleware: jwtGuard,
		Logger:        sysLogger,
	}
}
