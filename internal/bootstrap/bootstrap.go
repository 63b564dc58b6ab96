package bootstrap

import (
	"database/sql"

	"employee-admin/internal/config"
	"employee-admin/internal/handlers"
	"employee-admin/internal/repositories"
	"employee-admin/internal/services"
	"employee-admin/internal/storage"

	"go.uber.org/zap"
)

// AppComponents holds the initialized handlers, services and stores.
type AppComponents struct {
	AuthHandler     *handlers.AuthHandler
	EmployeeHandler *handlers.EmployeeHandler
	UserRepo        repositories.UserRepository
	EmployeeRepo    repositories.EmployeeRepository
	FileStore       *storage.FileStore
}

// InitializeAppComponents creates and wires up the application's core
// components: repositories, the file store, services and handlers.
func InitializeAppComponents(
	cfg *config.Config,
	logger *zap.Logger,
	db *sql.DB,
) (*AppComponents, error) {
	logger.Info("Initializing application components: Repositories, Stores, Services, Handlers...")

	// --- 1. Initialize Repositories & File Store ---
	userRepo := repositories.NewSQLiteUserRepository(db, logger)
	employeeRepo := repositories.NewSQLiteEmployeeRepository(db, logger)
	fileStore := storage.NewFileStore(cfg.UploadDir, logger)
	logger.Info("Repositories and file store initialized.")

	// --- 2. Initialize Services ---
	authService := services.NewAuthService(userRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, logger)
	logger.Info("Services initialized.")

	// --- 3. Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionSecret)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, fileStore)
	logger.Info("Handlers initialized.")

	return &AppComponents{
		AuthHandler:     authHandler,
		EmployeeHandler: employeeHandler,
		UserRepo:        userRepo,
		EmployeeRepo:    employeeRepo,
		FileStore:       fileStore,
	}, nil
}
