package notify

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"hr-inventory-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMailerLowStock(t *testing.T) {
	d := &fakeDialer{}
	m := NewMailerWithDialer(d, "store@example.com", discardLogger())
	item := model.Item{ItemCode: "ITM-00001", Name: "Bolt", UOM: "pcs", CurrentStock: 2, MinStockLevel: 5}

	err := m.LowStock(item, []model.Personnel{{Email: "a@example.com"}, {Email: ""}, {Email: "b@example.com"}})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Low stock: Bolt (ITM-00001)"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Current stock: 2 pcs")
}

func TestMailerSkipsWithoutRecipients(t *testing.T) {
	d := &fakeDialer{}
	m := NewMailerWithDialer(d, "store@example.com", discardLogger())

	require.NoError(t, m.LowStock(model.Item{ItemCode: "ITM-00001"}, nil))
	assert.Empty(t, d.sent)
}

func TestMailerWrapsDialError(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	m := NewMailerWithDialer(d, "store@example.com", discardLogger())

	err := m.LowStock(model.Item{ItemCode: "ITM-00001"}, []model.Personnel{{Email: "a@example.com"}})
	assert.ErrorContains(t, err, "connection refused")
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.LowStock(model.Item{}, nil))
}
