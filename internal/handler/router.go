package handler

import "github.com/gin-gonic/gin"

// API groups the handlers mounted under /api/v1.
type API struct {
	Simulations *SimulationHandler
	Catalog     *CatalogHandler
	Proformas   *ProformaHandler
}

func (a API) Register(api *gin.RouterGroup) {
	api.GET("/vehicles", a.Catalog.ListVehicles)
	api.GET("/vehicles/:id", a.Catalog.GetVehicle)
	api.GET("/financing-profiles", a.Catalog.ListProfiles)
	api.GET("/financing-profiles/:id", a.Catalog.GetProfile)

	api.POST("/simulations", a.Simulations.Simulate)
	api.POST("/simulations/compare", a.Simulations.Compare)

	api.POST("/proformas", a.Proformas.Create)
	api.GET("/proformas", a.Proformas.List)
	api.GET("/proformas/:id", a.Proformas.Get)
	api.PATCH("/proformas/:id/status", a.Proformas.UpdateStatus)
}
