package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/measurements/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/measurements/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/measurements/internal/logging"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/service"
	"github.com/GriffinCanCode/measurements/internal/shared/id"
	"github.com/GriffinCanCode/measurements/internal/types"
	"github.com/GriffinCanCode/measurements/internal/utils"
)

// Version is reported by the root endpoint
const Version = "0.3.0"

const discoverLimit = 5

// Handlers contains all HTTP handlers
type Handlers struct {
	registry  *service.Registry
	workspace *common.Workspace
	metrics   *monitoring.Metrics
	logger    *logging.Logger
}

// NewHandlers creates a new handler set. metrics and logger may be nil.
func NewHandlers(registry *service.Registry, workspace *common.Workspace, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry:  registry,
		workspace: workspace,
		metrics:   metrics,
		logger:    logger.Named("http"),
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Measurements Service",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.workspace != nil {
		body["workspace"] = gin.H{"measurements": h.workspace.Len()}
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists available services, optionally filtered by category
// or ranked against a free-text query
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateCategory(categoryStr, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if query, ok := c.GetQuery("q"); ok {
		if err := utils.ValidateQuery(query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"query":    query,
			"services": h.registry.Discover(query, discoverLimit),
		})
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateParams(req.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the tracing middleware normally assigns the ID
	requestID := string(tracing.GetTraceID(c.Request.Context()))
	if requestID == "" {
		requestID = id.NewRequestID().String()
		c.Header(tracing.Header, requestID)
	}
	ctx := &types.Context{RequestID: &requestID}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrInvalidToolID):
			status = http.StatusBadRequest
		default:
			h.logger.WithRequest(requestID).Error("Tool execution failed",
				zap.String("tool", req.ToolID),
				zap.Error(err),
			)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
