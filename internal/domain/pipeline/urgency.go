package pipeline

import (
	"time"

	"habita_crm/internal/domain/entities"
)

// UrgencyThreshold is how long a lead may sit in one phase occurrence
// before it is flagged for attention.
const UrgencyThreshold = 10 * 24 * time.Hour

// IsUrgent reports whether the lead's current phase occurrence has been
// open for more than the threshold. Urgency is recomputed on every read
// and never persisted; it overlays, not replaces, the stored status.
func IsUrgent(lead entities.Lead, now time.Time) bool {
	if lead.Status == entities.LeadStatusConcluido {
		return false
	}
	return now.Sub(lead.CurrentEntryStart()) > UrgencyThreshold
}
