package handlers

import (
	"io"
	"log"
	"net/http"

	response "habita_crm/internal/adapter/http/dto/response"
	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase"
	"habita_crm/internal/usecase/interfaces"
	"habita_crm/pkg"

	"github.com/gin-gonic/gin"
)

// LeadStreamHandler pushes full lead-collection snapshots to subscribed
// clients over server-sent events. Every event replaces the client's
// in-memory collection; there are no deltas.

type LeadStreamHandler struct {
	usecase usecase.ILeadUseCase
	stream  interfaces.ILeadStream
	clock   interfaces.Clock
}

func NewLeadStreamHandler(uc usecase.ILeadUseCase, stream interfaces.ILeadStream, clock interfaces.Clock) *LeadStreamHandler {
	return &LeadStreamHandler{usecase: uc, stream: stream, clock: clock}
}

// pushLatest keeps ch holding the newest snapshot without ever blocking
// the publisher. When the channel is full the stale snapshot is drained
// first; if a concurrent publisher fills it back in the meantime, this
// snapshot is dropped in favour of the newer one.
func pushLatest(ch chan []entities.Lead, leads []entities.Lead) {
	select {
	case ch <- leads:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- leads:
		default:
		}
	}
}

// StreamLeads godoc
// @Summary  Server-sent stream of authoritative lead snapshots
// @Tags     leads
// @Produce  text/event-stream
// @Router   /leads/stream [get]
func (h *LeadStreamHandler) StreamLeads(c *gin.Context) {
	// Buffered with replacement: a slow client always gets the latest
	// snapshot next, intermediate ones may be skipped.
	ch := make(chan []entities.Lead, 1)
	unsubscribe := h.stream.Subscribe(func(leads []entities.Lead) {
		pushLatest(ch, leads)
	})
	defer unsubscribe()

	initial, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[lead][stream] subscriber connected remote=%s", c.ClientIP())
	c.SSEvent("leads", response.FromLeads(initial, h.clock.Now()))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case leads := <-ch:
			c.SSEvent("leads", response.FromLeads(leads, h.clock.Now()))
			return true
		case <-c.Request.Context().Done():
			log.Printf("[lead][stream] subscriber disconnected remote=%s", c.ClientIP())
			return false
		}
	})
}
