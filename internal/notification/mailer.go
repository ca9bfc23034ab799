package notification

import (
	"fmt"

	"essenza/internal/config"
	"essenza/internal/domain"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Mailer emails an order summary to the operator mailbox. It is strictly
// best-effort: dispatch happens in the background and a failed send is
// logged, never propagated. Without credentials the mailer is a no-op.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
	logger *zap.Logger
}

func NewMailer(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	if !cfg.Enabled() {
		logger.Info("email notifications disabled: credentials not configured")
		return &Mailer{logger: logger}
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		to:     cfg.To,
		logger: logger,
	}
}

// Notify dispatches the summary without blocking the caller. The order is
// already on disk; the response does not wait on the mail transport.
func (m *Mailer) Notify(order domain.PersistedOrder) {
	if m.dialer == nil {
		return
	}
	go m.send(order)
}

func (m *Mailer) send(order domain.PersistedOrder) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New perfume order from %s", order.Name))
	msg.SetBody("text/plain", FormatOrder(order))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("sending order notification failed",
			zap.String("perfumeId", order.PerfumeID),
			zap.Error(err),
		)
		return
	}

	m.logger.Info("order notification sent", zap.String("to", m.to))
}

// FormatOrder renders all seven persisted fields as a plain-text summary.
func FormatOrder(o domain.PersistedOrder) string {
	return fmt.Sprintf(
		"New order received.\n\n"+
			"Name: %s\n"+
			"Phone: %s\n"+
			"Perfume ID: %s\n"+
			"Perfume: %s\n"+
			"Quantity: %s\n"+
			"Delivery address: %s\n"+
			"Date: %s\n",
		o.Name, o.Phone, o.PerfumeID, o.PerfumeName, o.Quantity, o.DeliveryAddress, o.Date,
	)
}
