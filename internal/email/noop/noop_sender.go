package noop

import (
	"context"
	"log"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs confirmations to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendOrderConfirmation(_ context.Context, toEmail, toName string, order *domain.Order) error {
	log.Printf("[NOOP EMAIL] Order confirmation %s for %s (%s), total %d cents",
		order.Reference, toName, toEmail, order.TotalTTC)
	return nil
}
