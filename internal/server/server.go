package server

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/measurements/internal/config"
	"github.com/GriffinCanCode/measurements/internal/http"
	"github.com/GriffinCanCode/measurements/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/measurements/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/measurements/internal/logging"
	"github.com/GriffinCanCode/measurements/internal/middleware"
	"github.com/GriffinCanCode/measurements/internal/numdiff"
	mathProvider "github.com/GriffinCanCode/measurements/internal/providers/math"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/providers/math/utilities"
	"github.com/GriffinCanCode/measurements/internal/service"
)

const readHeaderTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	http      *nethttp.Server
	registry  *service.Registry
	workspace *common.Workspace
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
	tracer    *tracing.Tracer
}

// NewServer creates a new server instance. A nil logger discards output.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	logger.Info("Initializing Measurements Server",
		zap.String("addr", cfg.Server.Address()),
		zap.String("diff_formula", cfg.Diff.Formula),
	)

	diff, err := numdiff.New(numdiff.Config{Formula: cfg.Diff.Formula, Step: cfg.Diff.Step})
	if err != nil {
		return nil, fmt.Errorf("invalid differentiation config: %w", err)
	}

	var limiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if limiter, err = rateLimiter(cfg.RateLimit); err != nil {
			return nil, err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.NewMetrics(reg)

	workspace := common.NewWorkspace()
	if cfg.BudgetFile != "" {
		if err := preload(workspace, cfg.BudgetFile, logger); err != nil {
			return nil, err
		}
	}
	metrics.SetMeasurements(workspace.Len())

	serviceRegistry := service.NewRegistry()
	logger.Info("Registering service providers...")
	if err := serviceRegistry.Register(mathProvider.NewProvider(workspace, diff, logger, metrics)); err != nil {
		return nil, fmt.Errorf("failed to register math provider: %w", err)
	}
	stats := serviceRegistry.Stats()
	logger.Info("Services registered",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	tracer := tracing.New("measurements", logger.Logger)

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if limiter != nil {
		logger.Info("Rate limiting enabled",
			zap.String("scope", cfg.RateLimit.Scope),
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(limiter)
	}

	handlers := http.NewHandlers(serviceRegistry, workspace, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &nethttp.Server{
			Addr:              cfg.Server.Address(),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		registry:  serviceRegistry,
		workspace: workspace,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
		tracer:    tracer,
	}, nil
}

func rateLimiter(cfg config.RateLimitConfig) (gin.HandlerFunc, error) {
	limits := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}
	switch cfg.Scope {
	case "", "client":
		return middleware.RateLimit(limits), nil
	case "global":
		return middleware.GlobalRateLimit(limits), nil
	default:
		return nil, fmt.Errorf("unknown rate limit scope %q", cfg.Scope)
	}
}

func preload(ws *common.Workspace, path string, logger *logging.Logger) error {
	budget, err := utilities.ReadBudget(path)
	if err != nil {
		return fmt.Errorf("failed to read budget %s: %w", path, err)
	}
	entries, err := budget.Load(ws)
	if err != nil {
		return fmt.Errorf("failed to load budget %s: %w", path, err)
	}
	logger.Info("Loaded uncertainty budget",
		zap.String("path", path),
		zap.Int("measurements", len(entries)),
	)
	return nil
}

// Handler returns the routed handler
func (s *Server) Handler() nethttp.Handler {
	return s.router
}

// Workspace returns the measurement store shared by all providers
func (s *Server) Workspace() *common.Workspace {
	return s.workspace
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	s.tracer.Close()

	// Sync logger before exit
	_ = s.logger.Sync()
	return nil
}
