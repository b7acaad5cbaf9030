package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Email is the request shape the mail relay accepts.
type Email struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Client talks to the outbound mail relay over HTTP. Delivery mechanics
// (SMTP, provider, retries) live behind the relay.
type Client struct {
	relayURL string
	client   *http.Client
}

func NewClient(relayURL string) *Client {
	return &Client{
		relayURL: relayURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Send(ctx context.Context, email Email) error {
	body, err := json.Marshal(email)

	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed to create mail relay request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("mail relay request failed: %w", err)
	}

	defer res.Body.Close()

	var relayRes Response

	if err := json.NewDecoder(res.Body).Decode(&relayRes); err != nil {
		return fmt.Errorf("failed to decode mail relay response (status %v): %w", res.StatusCode, err)
	}

	if res.StatusCode != http.StatusOK || !relayRes.Success {
		return fmt.Errorf("mail relay refused email (status %v): %v", res.StatusCode, relayRes.Error)
	}

	return nil
}
