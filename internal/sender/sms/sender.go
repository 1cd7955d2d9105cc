// Package sms sends text messages through the Twilio REST API.
package sms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/notifyx/notifyx/internal/dispatch"
)

const messagesURL = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// Sender represents a Twilio client used to send SMS notifications.
type Sender struct {
	accountSID string
	authToken  string
	from       string       // sending phone number
	client     *http.Client // HTTP client used to make requests
}

// NewSender creates a new Twilio Sender with the given account credentials.
func NewSender(accountSID, authToken, from string) *Sender {
	return &Sender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the message to the Twilio Messages endpoint and returns an error
// if the request fails or the API responds with a non-2xx status.
func (s *Sender) Send(ctx context.Context, msg dispatch.Message) error {
	endpoint := fmt.Sprintf(messagesURL, s.accountSID)

	form := url.Values{}
	form.Set("To", msg.To)
	form.Set("From", s.from)
	form.Set("Body", msg.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("twilio API error: %s", resp.Status)
	}

	return nil
}
