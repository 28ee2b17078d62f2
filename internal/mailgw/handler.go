package mailgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
	"taskboard/internal/notify"
	"taskboard/internal/roster"
	"taskboard/internal/taskstore"
	"taskboard/pkg/mailer"
	pkgResponse "taskboard/pkg/response"
)

// genericAckTemplate is the reply sent when triage fails: the sender
// still gets an acknowledgment instead of silence.
const genericAckTemplate = `Hi %s,

Thanks for reaching out. We received your message and someone from the team will follow up shortly.

Best regards,
The TaskBoard Team`

// HandleInboundMail processes one inbound email posted by the mail
// provider. It validates the request, acknowledges immediately, and runs
// triage in the background.
func (h *Handler) HandleInboundMail(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "inbound mail: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Errorf(ctx, "inbound mail: IP check failed: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	signature := c.GetHeader("X-Mail-Signature")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "inbound mail: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var req inboundMailRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		h.l.Errorf(ctx, "inbound mail: failed to decode body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}
	if req.FromEmail == "" || req.Body == "" {
		pkgResponse.Error(c, errors.New("from_email and body are required"), nil)
		return
	}

	if err := h.security.CheckRateLimit(req.FromEmail); err != nil {
		h.l.Warnf(ctx, "inbound mail: rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	email := model.InboundEmail{
		FromEmail:       req.FromEmail,
		FromName:        req.FromName,
		Subject:         req.Subject,
		Body:            req.Body,
		ProjectID:       req.ProjectID,
		ProjectName:     req.ProjectName,
		AttachmentNames: req.AttachmentNames,
	}

	// Process in background
	go h.processInboundMailAsync(email)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// processInboundMailAsync runs triage, creates the task, and replies.
func (h *Handler) processInboundMailAsync(email model.InboundEmail) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	h.l.Infof(ctx, "inbound mail: processing from=%s subject=%q", email.FromEmail, email.Subject)

	members, err := h.rosterSrc.ListMembers(ctx)
	if err != nil {
		h.l.Errorf(ctx, "inbound mail: roster fetch failed: %v", err)
		members = nil
	}
	// The agent account must never be picked as an assignee.
	members = roster.Filter(members, roster.ExcludeRole(model.RoleAgent))

	sc := model.Scope{UserID: "system_mailgw"}
	result, err := h.extractionUC.TriageEmail(ctx, sc, extraction.TriageInput{
		Email:          email,
		Roster:         members,
		ProjectContext: email.ProjectName,
	})

	var terr *extraction.TriageError
	if errors.As(err, &terr) {
		h.l.Warnf(ctx, "inbound mail: triage failed, sending generic acknowledgment: %v", err)
		h.sendReply(ctx, email, fmt.Sprintf(genericAckTemplate, senderName(email)))
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "inbound mail: triage error: %v", err)
		return
	}

	h.createTriageTask(ctx, email, result, members)
	h.sendReply(ctx, email, result.DraftReply)
}

// createTriageTask persists the triage proposal and notifies the assignee.
func (h *Handler) createTriageTask(ctx context.Context, email model.InboundEmail, result model.TriageResult, members []model.TeamMember) {
	var assigneeID *string
	if assignee := extraction.ResolveAssignee(members, result.AssigneeRole); assignee != nil {
		assigneeID = &assignee.ID
	}

	var projectID *string
	if email.ProjectID != "" {
		projectID = &email.ProjectID
	}

	task, err := h.store.CreateTask(ctx, taskstore.CreateTaskOptions{
		Title:       result.TaskTitle,
		Description: formatSections(result.TaskSections),
		AssigneeID:  assigneeID,
		ProjectID:   projectID,
		Priority:    result.TaskPriority,
		Status:      model.StatusBacklog,
		Source:      "email",
	})
	if err != nil {
		h.l.Errorf(ctx, "inbound mail: task creation failed: %v", err)
		return
	}

	h.l.Infof(ctx, "inbound mail: created task %s category=%s", task.ID, result.Category)

	if assigneeID != nil {
		h.notifier.Notify(ctx, *assigneeID, notify.Payload{
			Title: "New task from email",
			Body:  result.TaskTitle,
			URL:   task.URL,
		})
	}
}

// sendReply sends the reply when outbound mail is enabled.
func (h *Handler) sendReply(ctx context.Context, email model.InboundEmail, body string) {
	if h.mail == nil || body == "" {
		return
	}

	subject := email.Subject
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}

	if _, err := h.mail.Send(ctx, mailer.SendRequest{
		To:      email.FromEmail,
		Subject: subject,
		Body:    body,
	}); err != nil {
		h.l.Errorf(ctx, "inbound mail: reply to %s failed: %v", email.FromEmail, err)
	}
}

// formatSections renders the triage sections as a Markdown body.
func formatSections(sections []model.TaskSection) string {
	var sb strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", s.Heading, s.Content)
	}
	return strings.TrimSpace(sb.String())
}

func senderName(email model.InboundEmail) string {
	if email.FromName != "" {
		return email.FromName
	}
	return email.FromEmail
}
