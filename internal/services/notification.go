package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/pkg/sendgrid"
	"github.com/microcosm-cc/bluemonday"
)

// OrderNotifier tells the customer about a completed order.
type OrderNotifier interface {
	OrderConfirmed(ctx context.Context, confirmation *models.OrderConfirmation) error
}

type emailNotifier struct {
	emails sendgrid.EmailService
	policy *bluemonday.Policy
}

func NewEmailNotifier(emails sendgrid.EmailService) OrderNotifier {
	return &emailNotifier{emails: emails, policy: bluemonday.StrictPolicy()}
}

func (n *emailNotifier) OrderConfirmed(ctx context.Context, confirmation *models.OrderConfirmation) error {

	req := n.buildEmail(confirmation)

	if err := n.emails.Send(ctx, req); err != nil {
		return fmt.Errorf("failed to send confirmation for %s: %w", confirmation.NumeroPedido, err)
	}

	return nil
}

// buildEmail strips markup from everything the customer typed.
func (n *emailNotifier) buildEmail(c *models.OrderConfirmation) *models.EmailNotificationRequest {

	nombre := n.policy.Sanitize(c.Cliente.Nombre)
	direccion := n.policy.Sanitize(c.Cliente.Direccion)

	var text, html strings.Builder

	fmt.Fprintf(&text, "Hola %s,\n\nRecibimos tu pedido %s.\n\n", nombre, c.NumeroPedido)
	fmt.Fprintf(&html, "<p>Hola %s,</p><p>Recibimos tu pedido <strong>%s</strong>.</p><ul>", nombre, c.NumeroPedido)

	for _, p := range c.Productos {
		line := fmt.Sprintf("%s x%d: $%.2f", n.policy.Sanitize(p.Nombre), p.Cantidad, p.Subtotal())
		fmt.Fprintf(&text, "- %s\n", line)
		fmt.Fprintf(&html, "<li>%s</li>", line)
	}

	fmt.Fprintf(&text, "\nSubtotal: $%.2f\nEnvío: $%.2f\nTotal: $%.2f\n\nEnviaremos tu pedido a: %s\n",
		c.Totales.Subtotal, c.Totales.Envio, c.Totales.Total, direccion)
	fmt.Fprintf(&html, "</ul><p>Subtotal: $%.2f<br>Envío: $%.2f<br><strong>Total: $%.2f</strong></p><p>Enviaremos tu pedido a: %s</p>",
		c.Totales.Subtotal, c.Totales.Envio, c.Totales.Total, direccion)

	return &models.EmailNotificationRequest{
		To:          c.Cliente.Email,
		Subject:     "Confirmación de pedido " + c.NumeroPedido,
		Content:     text.String(),
		HTMLContent: html.String(),
	}
}
