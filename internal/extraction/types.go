package extraction

import "taskboard/internal/model"

// ExtractInput is one extraction call: the raw text plus the roster and
// project snapshot it resolves against. The snapshot is caller-supplied;
// callers that want to hide certain members (the agent role, say) filter
// the roster before passing it in.
type ExtractInput struct {
	Text     string
	Roster   []model.TeamMember
	Projects []model.ProjectRef
}

// TriageInput is one email triage call.
type TriageInput struct {
	Email model.InboundEmail
	// Roster is embedded into the prompt so the model can reason about
	// who does what; assignee resolution still happens in the caller via
	// ResolveAssignee.
	Roster []model.TeamMember
	// ProjectContext is free text describing the project the email belongs
	// to, when the mail gateway could attribute one.
	ProjectContext string
}
