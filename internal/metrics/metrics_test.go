package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyx/notifyx/internal/model"
)

func TestSink_ObserveDelivery(t *testing.T) {
	s := NewSink("", "notifyx")

	s.ObserveDelivery(model.ChannelEmail, "success", 10*time.Millisecond)
	s.ObserveDelivery(model.ChannelEmail, "failure", 5*time.Millisecond)
	s.IncPending()
	s.IncPending()
	s.DecPending()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	body := w.Body.String()
	assert.Contains(t, body, `notifyx_deliveries_total{channel="email",status="success"} 1`)
	assert.Contains(t, body, `notifyx_deliveries_total{channel="email",status="failure"} 1`)
	assert.Contains(t, body, "notifyx_pending_deliveries 1")
	assert.Contains(t, body, "notifyx_delivery_duration_seconds")
}

func TestSink_FlushWithoutPusher(t *testing.T) {
	s := NewSink("", "notifyx")

	// nothing configured, nothing to do
	s.Flush()
}
