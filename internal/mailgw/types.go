package mailgw

// SecurityConfig holds inbound-mail webhook security settings.
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per sender
}

// inboundMailRequest is the body the mail provider posts to the webhook.
type inboundMailRequest struct {
	FromEmail       string   `json:"from_email" binding:"required"`
	FromName        string   `json:"from_name"`
	Subject         string   `json:"subject"`
	Body            string   `json:"body" binding:"required"`
	ProjectID       string   `json:"project_id"`
	ProjectName     string   `json:"project_name"`
	AttachmentNames []string `json:"attachment_names"`
}
