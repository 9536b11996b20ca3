package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"ejsmarket/internal/config"
	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	storeURL    string
	payment     config.PaymentConfig
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(email config.EmailConfig, payment config.PaymentConfig) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(email.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: email.FromAddress,
		fromName:    email.FromName,
		storeURL:    email.StoreURL,
		payment:     payment,
	}, nil
}

func (s *sesSender) SendOrderConfirmation(ctx context.Context, toEmail, toName string, order *domain.Order) error {
	subject := fmt.Sprintf("Your eJS MARKET order %s", order.Reference)
	htmlBody := buildOrderConfirmationHTML(toName, order, s.payment, s.storeURL)
	textBody := buildOrderConfirmationText(toName, order, s.payment)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildOrderConfirmationText(name string, order *domain.Order, payment config.PaymentConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThank you for your order %s.\n\n", name, order.Reference)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d: %s\n", item.ProductName.Fr, item.Quantity, formatEuros(item.TotalTTC))
	}
	fmt.Fprintf(&b, "\nTotal (incl. VAT): %s\n\n", formatEuros(order.TotalTTC))
	fmt.Fprintf(&b, "Please pay by bank transfer to confirm your order:\n")
	fmt.Fprintf(&b, "Bank: %s\nIBAN: %s\nBIC: %s\nReference: %s\n\n", payment.BankName, payment.IBAN, payment.BIC, order.Reference)
	b.WriteString("Your order ships once the transfer is received.\n\neJS MARKET")
	return b.String()
}

func buildOrderConfirmationHTML(name string, order *domain.Order, payment config.PaymentConfig, storeURL string) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items,
			`<tr><td style="padding: 6px 12px;">%s</td><td style="padding: 6px 12px; text-align: center;">%d</td><td style="padding: 6px 12px; text-align: right;">%s</td></tr>`,
			item.ProductName.Fr, item.Quantity, formatEuros(item.TotalTTC))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Thank you for your order</h2>
  <p>Hi %s,</p>
  <p>We received your order <strong>%s</strong>.</p>
  <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
    <tr style="background: #f5f5f5;"><th style="padding: 6px 12px; text-align: left;">Item</th><th style="padding: 6px 12px;">Qty</th><th style="padding: 6px 12px; text-align: right;">Total</th></tr>
    %s
    <tr><td colspan="2" style="padding: 6px 12px;"><strong>Total (incl. VAT)</strong></td><td style="padding: 6px 12px; text-align: right;"><strong>%s</strong></td></tr>
  </table>
  <h3 style="color: #333;">Payment by bank transfer</h3>
  <p>Bank: %s<br>IBAN: %s<br>BIC: %s<br>Reference: <strong>%s</strong></p>
  <p>Your order ships once the transfer is received.</p>
  <p style="margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Visit the store</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">eJS MARKET</p>
</body>
</html>`, name, order.Reference, items.String(), formatEuros(order.TotalTTC),
		payment.BankName, payment.IBAN, payment.BIC, order.Reference, storeURL)
}

func formatEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d EUR", cents/100, cents%100)
}
