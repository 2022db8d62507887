package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gridsim/internal/api/models"
	"gridsim/internal/engine"
	"gridsim/internal/results"
	"gridsim/internal/scenario"
)

// SimulateHandler handles scenario runs.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler { return &SimulateHandler{} }

// RunScenario handles POST /api/v1/simulate
func (h *SimulateHandler) RunScenario(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params := scenario.Apply(scenario.Defaults(), req.Scenario)
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	run, err := engine.New().Run(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: results.Aggregate(run),
	}
	if req.Options.IncludeHourly {
		resp.Hourly = models.HourRowsFromRun(run)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareScenarios handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base := scenario.Apply(scenario.Defaults(), req.Base)
	eng := engine.New()

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		params := scenario.Apply(base, v.Scenario)
		if err := params.Validate(); err != nil {
			continue // skip invalid variations
		}
		run, err := eng.Run(params)
		if err != nil {
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    v.Name,
			Summary: results.Aggregate(run),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// GetDefaults handles GET /api/v1/defaults
func (h *SimulateHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, scenario.Defaults())
}
