package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/dealer-credit-simulator/internal/dto"
	"github.com/anyulbade/dealer-credit-simulator/internal/service"
)

type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	p := dto.ParsePagination(c)

	vehicles, total, err := h.svc.ListVehicles(c.Request.Context(), p.PageSize, p.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.VehicleListResponse{
		Data:       vehicles,
		Pagination: dto.NewPagination(p.Page, p.PageSize, total),
	})
}

func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	v, err := h.svc.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *CatalogHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.svc.ListProfiles(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileListResponse{Data: profiles})
}

func (h *CatalogHandler) GetProfile(c *gin.Context) {
	p, err := h.svc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}
