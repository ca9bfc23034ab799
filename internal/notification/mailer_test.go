package notification

import (
	"testing"

	"essenza/internal/config"
	"essenza/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testOrder() domain.PersistedOrder {
	return domain.PersistedOrder{
		Name:            "Ana",
		Phone:           "555",
		PerfumeID:       "2",
		PerfumeName:     "Rose",
		Quantity:        "1",
		DeliveryAddress: "Main St",
		Date:            "2025-03-14 09:26:53",
	}
}

func TestNewMailer_DisabledWithoutCredentials(t *testing.T) {
	m := NewMailer(config.MailConfig{Host: "smtp.example.com", Port: 587}, zap.NewNop())

	assert.Nil(t, m.dialer)

	// A disabled mailer must stay a silent no-op.
	m.Notify(testOrder())
}

func TestNewMailer_DisabledWithPartialCredentials(t *testing.T) {
	m := NewMailer(config.MailConfig{User: "shop@example.com"}, zap.NewNop())

	assert.Nil(t, m.dialer)
}

func TestNewMailer_EnabledWithCredentials(t *testing.T) {
	cfg := config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "shop@example.com",
		Password: "app-password",
		To:       "orders@example.com",
	}
	m := NewMailer(cfg, zap.NewNop())

	assert.NotNil(t, m.dialer)
	assert.Equal(t, "shop@example.com", m.from)
	assert.Equal(t, "orders@example.com", m.to)
}

func TestFormatOrder_AllSevenFields(t *testing.T) {
	body := FormatOrder(testOrder())

	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "555")
	assert.Contains(t, body, "2")
	assert.Contains(t, body, "Rose")
	assert.Contains(t, body, "1")
	assert.Contains(t, body, "Main St")
	assert.Contains(t, body, "2025-03-14 09:26:53")
}
