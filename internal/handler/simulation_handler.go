package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/dealer-credit-simulator/internal/dto"
	"github.com/anyulbade/dealer-credit-simulator/internal/service"
)

type SimulationHandler struct {
	svc *service.SimulationService
}

func NewSimulationHandler(svc *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{svc: svc}
}

// Simulate returns the full schedule. Pass ?schedule=false for totals only.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	sim, err := h.svc.Simulate(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := dto.NewSimulationResponse(sim.Output, c.DefaultQuery("schedule", "true") != "false")
	resp.VehicleID = sim.VehicleID
	c.JSON(http.StatusOK, resp)
}

func (h *SimulationHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	cmp, err := h.svc.Compare(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewComparisonResponse(cmp))
}
