package interfaces

import "habita_crm/internal/domain/entities"

// ILeadStream redistributes the authoritative lead collection to
// subscribed views after every mutation. Each callback invocation carries
// the full replacement snapshot, never a delta.

type ILeadStream interface {
	Publish(leads []entities.Lead)
	Subscribe(onChange func(leads []entities.Lead)) (unsubscribe func())
}
