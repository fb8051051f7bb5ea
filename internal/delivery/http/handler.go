package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaitori/backend/internal/domain"
	"github.com/kaitori/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.AggregationService
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.AggregationService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "kaitori-backend",
		"version": "1.0.0",
	})
}

// GetPrices returns the resolved buyback comparison table
func (h *Handler) GetPrices(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "aggregation service not configured",
		})
		return
	}

	if shopID := c.Query("shop"); shopID != "" {
		rows, err := h.service.PriceTableFor(shopID)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownShop) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "unknown shop: " + shopID,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to build price table",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"shops":  []string{shopID},
			"prices": rows,
		})
		return
	}

	rows := h.service.PriceTable()
	c.JSON(http.StatusOK, gin.H{
		"shops":  h.service.ShopIDs(),
		"prices": rows,
	})
}

// GetReport returns the report of the most recent aggregation run
func (h *Handler) GetReport(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "aggregation service not configured",
		})
		return
	}

	report := h.service.LastReport()
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no aggregation run has completed yet",
		})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Refresh triggers a new aggregation run
func (h *Handler) Refresh(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "aggregation service not configured",
		})
		return
	}

	report, err := h.service.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "an aggregation run is already in progress",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "aggregation run failed",
		})
		return
	}
	c.JSON(http.StatusOK, report)
}
