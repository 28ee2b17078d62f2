package usecase

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
)

// buildTimeContext anchors the model temporally so relative due dates
// resolve against the right day.
func buildTimeContext(now time.Time) string {
	return fmt.Sprintf("Current date and time: %s (%s)", now.Format(time.RFC3339), now.Weekday())
}

// formatRosterLine renders one team member for the prompt. The format is
// load-bearing: `- {name} (id: {id}, role: {role or "member"})`, with the
// free-text description appended after an em dash when present.
func formatRosterLine(m model.TeamMember) string {
	role := m.Role
	if role == "" {
		role = model.RoleMember
	}
	line := fmt.Sprintf("- %s (id: %s, role: %s)", m.Name, m.ID, role)
	if m.Description != "" {
		line += fmt.Sprintf(" — %s", m.Description)
	}
	return line
}

func formatRoster(roster []model.TeamMember) string {
	if len(roster) == 0 {
		return "(no members)"
	}
	lines := make([]string, 0, len(roster))
	for _, m := range roster {
		lines = append(lines, formatRosterLine(m))
	}
	return strings.Join(lines, "\n")
}

func formatProjects(projects []model.ProjectRef) string {
	if len(projects) == 0 {
		return "Projects: (none)"
	}
	lines := make([]string, 0, len(projects)+1)
	lines = append(lines, "Projects:")
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("- %s (id: %s)", p.Name, p.ID))
	}
	return strings.Join(lines, "\n")
}

// buildExtractionPrompt produces the system instruction for task
// extraction. Pure function of its inputs.
func buildExtractionPrompt(now time.Time, roster []model.TeamMember, projects []model.ProjectRef) string {
	return fmt.Sprintf(extractionInstructions,
		buildTimeContext(now),
		formatRoster(roster),
		roleRoutingTable,
		formatProjects(projects),
		MaxTasksPerBatch,
	)
}

// buildTriagePrompt produces the system instruction for email triage.
func buildTriagePrompt(now time.Time, roster []model.TeamMember, projectContext string) string {
	ctxBlock := ""
	if strings.TrimSpace(projectContext) != "" {
		ctxBlock = "Project context:\n" + projectContext
	}
	return fmt.Sprintf(triageInstructions,
		buildTimeContext(now),
		formatRoster(roster),
		roleRoutingTable,
		ctxBlock,
	)
}

// formatEmail renders the inbound email as the user message for triage.
func formatEmail(e model.InboundEmail) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s <%s>\n", e.FromName, e.FromEmail)
	fmt.Fprintf(&sb, "Subject: %s\n", e.Subject)
	if e.ProjectName != "" {
		fmt.Fprintf(&sb, "Project: %s\n", e.ProjectName)
	}
	if len(e.AttachmentNames) > 0 {
		fmt.Fprintf(&sb, "Attachments: %s\n", strings.Join(e.AttachmentNames, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(e.Body)
	return sb.String()
}
