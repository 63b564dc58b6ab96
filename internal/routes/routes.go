package routes

import (
	"database/sql"
	"time"

	"employee-admin/internal/bootstrap"
	"employee-admin/internal/config"
	"employee-admin/internal/logging"
	mw "employee-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupRoutes configures the application routes.
func SetupRoutes(
	app *fiber.App,
	cfg *config.Config,
	logger *zap.Logger,
	components *bootstrap.AppComponents,
	db *sql.DB, // Passed for the health check
) {
	logger.Info("Setting up application routes...")

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		lg := logging.GetLogger()
		healthStatus := fiber.Map{"status": "healthy", "timestamp": time.Now().UTC()}

		if db != nil {
			if err := db.PingContext(c.Context()); err == nil {
				healthStatus["sqlite"] = "connected"
			} else {
				healthStatus["sqlite"] = "disconnected"
				lg.Warn("Health check: SQLite ping failed", zap.Error(err))
			}
		} else {
			healthStatus["sqlite"] = "uninitialized"
		}
		return c.Status(fiber.StatusOK).JSON(healthStatus)
	})

	// Static File Server for Uploaded Photos
	if cfg.UploadDir != "" {
		app.Static("/uploads", cfg.UploadDir, fiber.Static{
			Compress:  true,
			ByteRange: true,
		})
		logger.Info("Serving static files", zap.String("path", "/uploads"), zap.String("directory", cfg.UploadDir))
	} else {
		logger.Warn("Upload directory not configured, skipping static file route setup.")
	}

	// --- Public Routes ---
	components.AuthHandler.SetupAuthRoutes(app)

	// --- Session-Guarded Routes ---
	protected := app.Group("/", mw.RequireSession(cfg.SessionSecret))
	components.AuthHandler.SetupSessionRoutes(protected)
	components.EmployeeHandler.SetupEmployeeRoutes(protected)
}
