package notify

import "context"

// Payload is one push notification.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// Dispatcher is the fire-and-forget push notification boundary. Callers
// invoke it after a task lands in the store; delivery failures are logged
// by implementations, never surfaced to the user flow.
type Dispatcher interface {
	Notify(ctx context.Context, userID string, payload Payload)
}
