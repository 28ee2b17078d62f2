package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	pkgLog "taskboard/pkg/log"
)

// HTTPDispatcher posts notifications to the push gateway. Each send runs
// detached with its own timeout so a slow gateway never blocks the
// request that triggered the notification.
type HTTPDispatcher struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	l           pkgLog.Logger
}

// NewHTTPDispatcher creates a dispatcher for the given gateway.
func NewHTTPDispatcher(baseURL, accessToken string, l pkgLog.Logger) *HTTPDispatcher {
	return &HTTPDispatcher{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		l:           l,
	}
}

type notifyRequest struct {
	// IdempotencyKey lets the gateway drop duplicate sends on retry.
	IdempotencyKey string  `json:"idempotency_key"`
	UserID         string  `json:"user_id"`
	Payload        Payload `json:"payload"`
}

// Notify sends the payload in a detached goroutine.
func (d *HTTPDispatcher) Notify(ctx context.Context, userID string, payload Payload) {
	if d.baseURL == "" || userID == "" {
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := d.send(sendCtx, userID, payload); err != nil {
			d.l.Warnf(sendCtx, "notify: dispatch to user %s failed: %v", userID, err)
		}
	}()
}

func (d *HTTPDispatcher) send(ctx context.Context, userID string, payload Payload) error {
	body, err := json.Marshal(notifyRequest{
		IdempotencyKey: uuid.NewString(),
		UserID:         userID,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/api/v1/notifications", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", d.accessToken))

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notification gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification gateway error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
