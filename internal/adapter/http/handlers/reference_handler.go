package handlers

import (
	"net/http"
	"time"

	"habita_crm/internal/usecase/interfaces"
	"habita_crm/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidReferencePayload = pkg.NewDomainErrorSimple("INVALID_REFERENCE_INPUT", "Invalid reference payload", http.StatusBadRequest)
	errReferenceNotFound       = pkg.NewDomainErrorSimple("REFERENCE_NOT_FOUND", "Record not found", http.StatusNotFound)
)

// ReferenceHandler serves one flat reference collection (clients,
// brokers, properties, banks, construction companies). The rich admin
// screens live elsewhere; the CRM core only needs seeding and reads so
// joins are exercisable.

type ReferenceHandler[T any] struct {
	repo    interfaces.IReferenceRepository[T]
	clock   interfaces.Clock
	prepare func(item *T, id string, now time.Time)
	idOf    func(T) string
}

func NewReferenceHandler[T any](
	repo interfaces.IReferenceRepository[T],
	clock interfaces.Clock,
	prepare func(item *T, id string, now time.Time),
	idOf func(T) string,
) *ReferenceHandler[T] {
	return &ReferenceHandler[T]{repo: repo, clock: clock, prepare: prepare, idOf: idOf}
}

func (h *ReferenceHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(errInvalidReferencePayload.HTTPStatus, errInvalidReferencePayload.ToHTTPError())
		return
	}

	h.prepare(&item, uuid.NewString(), h.clock.Now())

	created, err := h.repo.Create(c.Request.Context(), item)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReferenceHandler[T]) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if h.idOf(item) == "" {
		c.JSON(errReferenceNotFound.HTTPStatus, errReferenceNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ReferenceHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}
