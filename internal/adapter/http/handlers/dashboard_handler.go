package handlers

import (
	"errors"
	"net/http"

	response "habita_crm/internal/adapter/http/dto/response"
	"habita_crm/internal/usecase"
	"habita_crm/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-side monetary projections. Everything
// is recomputed from the latest snapshots on each request.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary  Phase distribution, VGV buckets and total commission
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.DashboardResponse
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}

// GetBrokerCommission godoc
// @Summary  One broker's received vs receivable commission split
// @Tags     dashboard
// @Produce  json
// @Param    id path string true "broker id"
// @Success  200 {object} response.BrokerCommissionResponse
// @Router   /brokers/{id}/commission [get]
func (h *DashboardHandler) GetBrokerCommission(c *gin.Context) {
	split, err := h.usecase.BrokerCommission(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBrokerCommission(split))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBrokerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBrokerNotFound):
		return pkg.NewDomainErrorSimple("BROKER_NOT_FOUND", "Broker not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
