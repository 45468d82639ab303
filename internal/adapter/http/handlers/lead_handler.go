package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "habita_crm/internal/adapter/http/dto/request"
	response "habita_crm/internal/adapter/http/dto/response"
	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/pipeline"
	"habita_crm/internal/usecase"
	"habita_crm/internal/usecase/interfaces"
	"habita_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

// LeadHandler handles HTTP requests driving the lead pipeline.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
	clock   interfaces.Clock
}

func NewLeadHandler(uc usecase.ILeadUseCase, clock interfaces.Clock) *LeadHandler {
	return &LeadHandler{usecase: uc, clock: clock}
}

// actorFromHeaders resolves who is acting. Authentication lives upstream;
// the handlers only need the identity the gateway injected.
func actorFromHeaders(c *gin.Context) pipeline.Actor {
	return pipeline.Actor{
		ID:   strings.TrimSpace(c.GetHeader("X-Actor-Id")),
		Role: pipeline.Role(strings.TrimSpace(c.GetHeader("X-Actor-Role"))),
	}
}

// CreateLead godoc
// @Summary  Create a lead for a client with a linked property
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateLeadRequest true "client id"
// @Success  201 {object} response.LeadResponse
// @Router   /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.CreateLead(c.Request.Context(), payload.ResolveClientID())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead, h.clock.Now()))
}

// ListLeads godoc
// @Summary  List leads with the derived urgency overlay
// @Tags     leads
// @Produce  json
// @Param    urgent_only query bool false "return only urgent leads"
// @Success  200 {array} response.LeadResponse
// @Router   /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	now := h.clock.Now()
	if c.Query("urgent_only") == "1" || c.Query("urgent_only") == "true" {
		filtered := make([]entities.Lead, 0, len(leads))
		for _, l := range leads {
			if pipeline.IsUrgent(l, now) {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	c.JSON(http.StatusOK, response.FromLeads(leads, now))
}

// GetLead godoc
// @Summary  Get one lead
// @Tags     leads
// @Produce  json
// @Param    id path string true "lead id"
// @Success  200 {object} response.LeadResponse
// @Router   /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead, h.clock.Now()))
}

// AdvanceLead godoc
// @Summary  Record the current phase outcome and advance the pipeline
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    id path string true "lead id"
// @Param    payload body request.AdvanceLeadRequest true "outcome"
// @Success  200 {object} response.LeadResponse
// @Router   /leads/{id}/advance [patch]
func (h *LeadHandler) AdvanceLead(c *gin.Context) {
	var payload request.AdvanceLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	outcome, err := payload.ResolveOutcome()
	if err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}
	extras, err := payload.ResolveExtras()
	if err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), outcome, extras)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead, h.clock.Now()))
}

// OverrideLead godoc
// @Summary  Admin-only direct field correction bypassing phase order
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    id path string true "lead id"
// @Param    payload body request.OverrideLeadRequest true "patch"
// @Success  200 {object} response.LeadResponse
// @Router   /leads/{id}/override [patch]
func (h *LeadHandler) OverrideLead(c *gin.Context) {
	var payload request.OverrideLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	patch, err := payload.ResolvePatch()
	if err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Override(c.Request.Context(), c.Param("id"), patch, actorFromHeaders(c))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead, h.clock.Now()))
}

// RegressLead godoc
// @Summary  Move a lead backward (admins apply, operators file a request)
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    id path string true "lead id"
// @Param    payload body request.RegressLeadRequest true "target phase"
// @Success  200 {object} response.GateResponse
// @Router   /leads/{id}/regress [post]
func (h *LeadHandler) RegressLead(c *gin.Context) {
	var payload request.RegressLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.RequestRegression(c.Request.Context(), c.Param("id"), payload.ResolveTargetPhase(), actorFromHeaders(c), payload.Motive)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if !res.Applied {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromGateResult(res))
}

// DeleteLead godoc
// @Summary  Delete a lead (admins apply, operators file a request)
// @Tags     leads
// @Produce  json
// @Param    id path string true "lead id"
// @Success  200 {object} response.GateResponse
// @Router   /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	var payload request.DeleteLeadRequest
	_ = c.ShouldBindJSON(&payload) // body is optional on DELETE

	res, err := h.usecase.RequestDeletion(c.Request.Context(), c.Param("id"), actorFromHeaders(c), payload.Motive)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if !res.Applied {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromGateResult(res))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidTarget):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrMissingPropertyLink):
		return pkg.NewDomainErrorSimple("MISSING_PROPERTY_LINK", "Client has no linked property", http.StatusUnprocessableEntity)
	case errors.Is(err, pipeline.ErrMissingMotive):
		return pkg.NewDomainErrorSimple("MISSING_MOTIVE", "A motive is required for non-completing outcomes", http.StatusUnprocessableEntity)
	case errors.Is(err, pipeline.ErrMissingPhaseDate), errors.Is(err, pipeline.ErrAppraisalRequired):
		return pkg.NewDomainErrorSimple("MISSING_PHASE_DATA", "Completing this phase requires additional data", http.StatusUnprocessableEntity)
	case errors.Is(err, pipeline.ErrInvalidTransition), errors.Is(err, pipeline.ErrUnknownOutcome), errors.Is(err, pipeline.ErrUnknownPhase), errors.Is(err, usecase.ErrNotARegression):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Outcome not allowed for this phase", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Action requires administrator role", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
