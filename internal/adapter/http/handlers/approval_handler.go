package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "habita_crm/internal/adapter/http/dto/response"
	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase"
	"habita_crm/pkg"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler exposes the governance gate to administrators.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// ListApprovals godoc
// @Summary  List approval requests by status
// @Tags     approvals
// @Produce  json
// @Param    status query string false "pendente|aprovado|negado (default pendente)"
// @Success  200 {array} response.ApprovalResponse
// @Router   /approvals [get]
func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
	status := entities.ApprovalStatus(strings.TrimSpace(c.Query("status")))
	if status == "" {
		status = entities.ApprovalStatusPendente
	}

	reqs, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApprovals(reqs))
}

// ApproveRequest godoc
// @Summary  Approve a pending request, applying the gated action
// @Tags     approvals
// @Produce  json
// @Param    id path string true "request id"
// @Success  200 {object} response.ApprovalResponse
// @Router   /approvals/{id}/approve [patch]
func (h *ApprovalHandler) ApproveRequest(c *gin.Context) {
	req, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), actorFromHeaders(c))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(req))
}

// DenyRequest godoc
// @Summary  Deny a pending request, leaving the lead untouched
// @Tags     approvals
// @Produce  json
// @Param    id path string true "request id"
// @Success  200 {object} response.ApprovalResponse
// @Router   /approvals/{id}/deny [patch]
func (h *ApprovalHandler) DenyRequest(c *gin.Context) {
	req, err := h.usecase.Deny(c.Request.Context(), c.Param("id"), actorFromHeaders(c))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(req))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApprovalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyApproved), errors.Is(err, usecase.ErrAlreadyDenied):
		return pkg.NewDomainErrorSimple("ALREADY_DECIDED", "Approval request already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Action requires administrator role", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
