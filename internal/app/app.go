package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"employee-admin/internal/bootstrap"
	"employee-admin/internal/config"
	"employee-admin/internal/database"
	"employee-admin/internal/logging"
	"employee-admin/internal/middleware"
	"employee-admin/internal/routes"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run initializes and starts the application
func Run() {
	initAppStartTime := time.Now()

	// --- 1. Load Configuration ---
	tempConfigLogger, _ := zap.NewProduction(zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	defer tempConfigLogger.Sync()

	cfg, err := config.LoadConfig(tempConfigLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- 2. Initialize Logger ---
	logger, err := logging.InitializeLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize application logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobalLogger(logger)

	// --- 3. Initialize SQLite Database ---
	db, err := database.InitSQLite(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize SQLite database", zap.Error(err))
	}

	// --- 4. Initialize Fiber App with HTML views ---
	logger.Info("Initializing Fiber application...", zap.String("views", cfg.ViewsDir))
	engine := html.New(cfg.ViewsDir, ".html")
	appFiber := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		Views:   engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			lg := middleware.GetRequestLogger(c)
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) && e != nil {
				code = e.Code
			}
			fields := []zap.Field{
				zap.Int("status", code),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("ip", c.IP()),
				zap.Error(err),
			}
			if reqID := middleware.GetRequestID(c); reqID != "" {
				fields = append(fields, zap.String("request_id", reqID))
			}
			if code == fiber.StatusNotFound {
				lg.Warn("Resource not found", fields...)
			} else {
				lg.Error("Generic ErrorHandler", fields...)
			}
			detail := ""
			if cfg.AppEnv != "production" && err != nil {
				detail = err.Error()
			}
			if renderErr := c.Status(code).Render("error", fiber.Map{
				"Status": code,
				"Detail": detail,
			}); renderErr != nil {
				return c.Status(code).SendString("An unexpected error occurred")
			}
			return nil
		},
	})

	// --- 5. Initialize Application Components (Bootstrap) ---
	components, err := bootstrap.InitializeAppComponents(cfg, logger, db)
	if err != nil {
		logger.Fatal("Failed to initialize application components", zap.Error(err))
	}

	// --- 6. Register Middleware ---
	appFiber.Use(recover.New(recover.Config{
		EnableStackTrace: strings.ToLower(cfg.LogLevel) == "debug",
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			lg := middleware.GetRequestLogger(c)
			lg.Error("Panic recovered", zap.Any("panic_value", e))
		},
	}))
	appFiber.Use(middleware.RequestLogger(logger))
	appFiber.Use(fiberzap.New(fiberzap.Config{
		Logger: logger,
		Fields: []string{"status", "method", "url", "ip", "latency", "error"},
		FieldsFunc: func(c *fiber.Ctx) []zap.Field {
			fields := []zap.Field{zap.String("log_type", "access")}
			if reqID := middleware.GetRequestID(c); reqID != "" {
				fields = append(fields, zap.String("request_id", reqID))
			}
			return fields
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || strings.HasPrefix(c.Path(), "/uploads")
		},
	}))

	// --- 7. Setup Application Routes ---
	routes.SetupRoutes(appFiber, cfg, logger, components, db)

	// --- 8. Start Server & Graceful Shutdown ---
	serverCtx, cancelServerCtx := context.WithCancel(context.Background())
	defer cancelServerCtx()
	serverStopped := make(chan struct{})

	initAppDurationMs := time.Since(initAppStartTime).Milliseconds()

	go func() {
		defer close(serverStopped)
		listenAddr := ":" + cfg.Port
		logger.Info(fmt.Sprintf("Completed initialization application in %d ms.", initAppDurationMs))
		logger.Info("Starting Fiber server...",
			zap.String("address", listenAddr),
			zap.Int("pid", os.Getpid()),
			zap.String("app_env", cfg.AppEnv),
		)

		if err := appFiber.Listen(listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server listener failed", zap.String("address", listenAddr), zap.Error(err))
			cancelServerCtx()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	select {
	case s := <-sig:
		logger.Info("Shutdown signal received.", zap.String("signal", s.String()))
	case <-serverCtx.Done():
		logger.Info("Server context cancelled, initiating shutdown.")
	}

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := appFiber.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Fiber server shutdown failed", zap.Error(err))
	} else {
		logger.Info("Fiber server gracefully stopped.")
	}
	<-serverStopped
	logger.Info("HTTP listener goroutine stopped.")

	if errSync := logger.Sync(); errSync != nil {
		errMsg := errSync.Error()
		if !strings.Contains(errMsg, "sync /dev/stdout") {
			fmt.Fprintf(os.Stderr, "[WARN] Error syncing logger: %v\n", errSync)
		}
	}

	closeDB(db)
	fmt.Println("[INFO] Application shutdown complete.")
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] Error closing SQLite database: %v\n", err)
	} else {
		fmt.Println("[INFO] SQLite database connection closed.")
	}
}
