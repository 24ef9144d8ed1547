package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/dealer-credit-simulator/internal/dto"
	"github.com/anyulbade/dealer-credit-simulator/internal/model"
	"github.com/anyulbade/dealer-credit-simulator/internal/service"
)

const UserIDHeader = "X-User-ID"

type ProformaHandler struct {
	svc *service.ProformaService
}

func NewProformaHandler(svc *service.ProformaService) *ProformaHandler {
	return &ProformaHandler{svc: svc}
}

func (h *ProformaHandler) Create(c *gin.Context) {
	creator, ok := userID(c)
	if !ok {
		return
	}

	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), &req, creator)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProformaResponse(p))
}

func (h *ProformaHandler) Get(c *gin.Context) {
	creator, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id, creator)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProformaResponse(p))
}

func (h *ProformaHandler) List(c *gin.Context) {
	creator, ok := userID(c)
	if !ok {
		return
	}
	p := dto.ParsePagination(c)

	proformas, total, err := h.svc.ListByCreator(c.Request.Context(), creator, p.PageSize, p.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ProformaListResponse{
		Data:       toProformaResponses(proformas),
		Pagination: dto.NewPagination(p.Page, p.PageSize, total),
	})
}

func (h *ProformaHandler) UpdateStatus(c *gin.Context) {
	creator, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	var req dto.UpdateProformaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	p, err := h.svc.UpdateStatus(c.Request.Context(), id, creator, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProformaResponse(p))
}

func toProformaResponses(proformas []model.Proforma) []dto.ProformaResponse {
	out := make([]dto.ProformaResponse, len(proformas))
	for i := range proformas {
		out[i] = dto.NewProformaResponse(&proformas[i])
	}
	return out
}

func userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetHeader(UserIDHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error:  "missing or malformed " + UserIDHeader + " header",
			Errors: []dto.ValidationError{{Field: UserIDHeader, Message: "must be a uuid"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

func pathUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "invalid id: " + c.Param("id"),
		})
		return uuid.Nil, false
	}
	return id, true
}
