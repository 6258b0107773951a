package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"

	"space_catalog/internal/app/handler/api"
	"space_catalog/internal/app/repository"
	"space_catalog/internal/app/service"
)

type Handler struct {
	Repository     *repository.Repository
	ShipAPIHandler *api.ShipHandler
}

func NewHandler(rep *repository.Repository, minioClient *minio.Client, minioBucket string) *Handler {
	return &Handler{
		Repository: rep,
		ShipAPIHandler: &api.ShipHandler{
			Service:     service.NewShipService(rep),
			MinioClient: minioClient,
			MinioBucket: minioBucket,
		},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	// API маршруты
	apiGroup := router.Group("/api")
	{
		// Домен кораблей
		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.GET("/ships/count", h.ShipAPIHandler.GetShipsCountAPI)
		apiGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
		apiGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		apiGroup.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		apiGroup.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
		apiGroup.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)
	}
}
