package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Client wraps the Gmail API service for outbound replies.
type Client struct {
	service *gmail.Service
	from    string
}

// NewClientFromCredentialsFile creates a Gmail client from a Service
// Account JSON file path. The service account must carry domain-wide
// delegation for the from address.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, from string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, from)
}

// NewClientFromCredentialsJSON creates a Gmail client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, from string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	// Impersonate the sending mailbox.
	config.Subject = from

	svc, err := gmail.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc, from: from}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, from string) (*Client, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc, from: from}, nil
}

// Send sends one plain-text email via the Gmail API.
func (c *Client) Send(ctx context.Context, req SendRequest) (*Message, error) {
	from := req.From
	if from == "" {
		from = c.from
	}

	raw := buildRFC2822(from, req)
	msg := &gmail.Message{
		Raw:      base64.URLEncoding.EncodeToString([]byte(raw)),
		ThreadId: req.ThreadID,
	}

	sent, err := c.service.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to send mail: %w", err)
	}

	return &Message{
		ID:       sent.Id,
		ThreadID: sent.ThreadId,
	}, nil
}

// buildRFC2822 assembles the wire-format message the Gmail API expects
// in the raw field.
func buildRFC2822(from string, req SendRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", req.To)
	if req.ReplyTo != "" {
		fmt.Fprintf(&sb, "Reply-To: %s\r\n", req.ReplyTo)
	}
	fmt.Fprintf(&sb, "Subject: %s\r\n", req.Subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(req.Body)
	return sb.String()
}
