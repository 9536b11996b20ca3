package port

import (
	"context"

	"ejsmarket/internal/domain"
)

// EmailSender defines the contract for sending transactional emails.
type EmailSender interface {
	// SendOrderConfirmation sends the order summary together with the manual
	// bank transfer instructions.
	SendOrderConfirmation(ctx context.Context, toEmail, toName string, order *domain.Order) error
}
