package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/annuity-calculator/internal/calculation"
	"github.com/rpgo/annuity-calculator/internal/config"
	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/rpgo/annuity-calculator/internal/logging"
	"github.com/rpgo/annuity-calculator/internal/output"
)

// Engine is the subset of the calculation package the handlers depend on.
type Engine interface {
	RunSimulations(ctx context.Context, params domain.SimulationParameters) (*domain.SimulationResult, error)
	CompareAlgorithms(ctx context.Context, params domain.SimulationParameters) ([]domain.AlgorithmSummary, error)
}

type simulatorEngine struct {
	sim *calculation.Simulator
}

func (e simulatorEngine) RunSimulations(ctx context.Context, params domain.SimulationParameters) (*domain.SimulationResult, error) {
	return e.sim.RunSimulations(ctx, params)
}

func (e simulatorEngine) CompareAlgorithms(ctx context.Context, params domain.SimulationParameters) ([]domain.AlgorithmSummary, error) {
	return calculation.CompareAlgorithms(ctx, params)
}

// NewEngine adapts a simulator to the Engine interface.
func NewEngine(sim *calculation.Simulator) Engine {
	return simulatorEngine{sim: sim}
}

// Handler serves the simulation and comparison endpoints.
type Handler struct {
	engine Engine
	logger *logging.Logger
}

func NewHandler(engine Engine, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{engine: engine, logger: logger.WithComponent(logging.ComponentHTTP)}
}

// RegisterRoutes binds the handlers to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.Health)

	api := router.Group("/v1")
	{
		api.POST("/simulations", h.RunSimulations)
		api.POST("/comparisons", h.CompareAlgorithms)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunSimulations responds with the plottable series and the statistics table.
func (h *Handler) RunSimulations(c *gin.Context) {
	params, ok := h.bindParameters(c)
	if !ok {
		return
	}

	result, err := h.engine.RunSimulations(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "simulation failed", err)
		return
	}

	c.JSON(http.StatusOK, output.NewJSONReport(result))
}

// CompareAlgorithms responds with one payment summary per policy.
func (h *Handler) CompareAlgorithms(c *gin.Context) {
	params, ok := h.bindParameters(c)
	if !ok {
		return
	}

	summaries, err := h.engine.CompareAlgorithms(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "comparison failed", err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) bindParameters(c *gin.Context) (domain.SimulationParameters, bool) {
	var params domain.SimulationParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return params, false
	}
	if err := checkLimits(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return params, false
	}
	return params, true
}

// checkLimits caps the request size; the engine itself has no upper bounds.
func checkLimits(params domain.SimulationParameters) error {
	if params.NumSimulations > config.MaxNumSimulations {
		return &domain.ParameterError{Field: "num_simulations", Value: params.NumSimulations, Reason: fmt.Sprintf("must be at most %d", config.MaxNumSimulations)}
	}
	if params.DurationYears > config.MaxDurationYears {
		return &domain.ParameterError{Field: "duration_years", Value: params.DurationYears, Reason: fmt.Sprintf("must be at most %d", config.MaxDurationYears)}
	}
	return nil
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	h.logger.Warn(msg, logging.FieldError, err, logging.FieldStatusCode, status)
	c.JSON(status, gin.H{"error": err.Error()})
}
