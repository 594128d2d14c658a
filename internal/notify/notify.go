// Package notify delivers operational alerts to personnel by e-mail.
package notify

import (
	"fmt"
	"log/slog"
	"strings"

	"hr-inventory-backend/internal/model"

	"gopkg.in/gomail.v2"
)

// Notifier is told about items that dropped to their reorder threshold.
type Notifier interface {
	LowStock(item model.Item, recipients []model.Personnel) error
}

// Dialer is the part of gomail.Dialer the mailer needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer Dialer
	from   string
	log    *slog.Logger
}

func NewMailer(host string, port int, user, password, from string, log *slog.Logger) *Mailer {
	return &Mailer{dialer: gomail.NewDialer(host, port, user, password), from: from, log: log}
}

func NewMailerWithDialer(d Dialer, from string, log *slog.Logger) *Mailer {
	return &Mailer{dialer: d, from: from, log: log}
}

func (m *Mailer) LowStock(item model.Item, recipients []model.Personnel) error {
	to := make([]string, 0, len(recipients))
	for _, p := range recipients {
		if p.Email != "" {
			to = append(to, p.Email)
		}
	}
	if len(to) == 0 {
		m.log.Warn("low stock alert has no recipients", "item", item.ItemCode, "unit_id", item.UnitID)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", fmt.Sprintf("Low stock: %s (%s)", item.Name, item.ItemCode))
	msg.SetBody("text/plain", lowStockBody(item))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send low stock mail: %w", err)
	}
	m.log.Info("low stock alert sent", "item", item.ItemCode, "recipients", len(to))
	return nil
}

func lowStockBody(item model.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item %s (%s) is running low.\n\n", item.Name, item.ItemCode)
	fmt.Fprintf(&b, "Current stock: %d %s\n", item.CurrentStock, item.UOM)
	fmt.Fprintf(&b, "Minimum stock level: %d %s\n", item.MinStockLevel, item.UOM)
	return b.String()
}

// Nop discards alerts; used when SMTP is not configured.
type Nop struct {
	Log *slog.Logger
}

func (n Nop) LowStock(item model.Item, _ []model.Personnel) error {
	if n.Log != nil {
		n.Log.Debug("low stock alert skipped, smtp not configured", "item", item.ItemCode)
	}
	return nil
}
