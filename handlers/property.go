package handlers

import (
	"net/http"

	"rentalite/services/property"
	"rentalite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler exposes read access to the property catalogue.
type PropertyHandler struct {
	PropertySvc property.PropertyService
	Logger      *zap.Logger
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc property.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{PropertySvc: svc, Logger: logger}
}

// ListProperties handles GET /property.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.PropertySvc.ListProperties()
	if err != nil {
		h.Logger.Error("ListProperties: failed to fetch properties", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetPropertyByID handles GET /property/:id.
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")

	prop, err := h.PropertySvc.GetPropertyByID(id)
	if err != nil {
		h.Logger.Warn("GetPropertyByID: request rejected", zap.String("propertyID", id), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prop)
}
