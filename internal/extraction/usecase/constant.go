package usecase

// Generation tuning. Low temperature keeps the JSON output deterministic.
const (
	generationTemperature = 0.2
	generationMaxTokens   = 2048
)

// Batch limits and confidence defaults.
const (
	// MaxTasksPerBatch clamps how many tasks one extraction may return.
	MaxTasksPerBatch = 10

	// FallbackConfidence is the fixed confidence of the regex fallback
	// parser, for both the task and the batch.
	FallbackConfidence = 0.3

	// DefaultConfidence applies when the model omits a confidence field.
	DefaultConfidence = 0.5
)

// Triage section bounds. A triage task body carries 2 to 4 sections and
// one of them must be the goal.
const (
	minTaskSections    = 2
	maxTaskSections    = 4
	requiredSectionKey = "Goal"
)

// roleRoutingTable is the fixed routing guidance embedded into every
// extraction and triage prompt.
const roleRoutingTable = `Role routing rules:
- design: visual, brand, and UI work
- strategy: planning and research
- development: code and engineering
- pm: scheduling and coordination
- content_writer: copywriting`

// extractionInstructions is the system-prompt skeleton for task extraction.
// Placeholders: time context, roster block, project block.
const extractionInstructions = `You are a task extraction assistant for a team task board.

%s

Team roster:
%s

%s
%s

Read the user's message and extract every distinct task it describes.

Splitting policy:
- If the message describes N distinct actions, output N tasks (at most %d).
- Metadata stated once for the whole message (assignee, due date, project) applies to every task split from it.
- Metadata stated for one action applies only to that task.

Assignment policy:
- Prefer an explicitly named person. Match names against the roster and output that member's id.
- Otherwise pick the member whose role or description best fits the work. A description like "front-end developer" counts as development even when the role field says member.
- Only leave assignee_id null when no roster member plausibly fits.

Dates: resolve relative phrases ("tomorrow", "Friday", "next week") against the current date above and output RFC 3339 timestamps.

Respond with ONLY a JSON object, no prose and no code fences:
{
  "tasks": [
    {
      "title": "short imperative title with metadata phrases stripped",
      "assignee_id": "roster id or null",
      "project_id": "project id or null",
      "due_at": "RFC 3339 timestamp or null",
      "priority": 1,
      "status": "backlog|doing|waiting|done",
      "confidence": 0.9
    }
  ],
  "confidence": 0.9
}
Priority is 1 (urgent) to 4 (low), default 3. Status defaults to "doing".`

// triageInstructions is the system-prompt skeleton for email triage.
// Placeholders: time context, roster block, project context block.
const triageInstructions = `You are an email triage assistant for a team task board.

%s

Team roster:
%s

%s
%s

Classify the inbound email below, propose one task for it, and draft a short professional reply to the sender.

Respond with ONLY a JSON object, no prose and no code fences:
{
  "category": "design|strategy|development|pm|general",
  "assignee_role": "design|strategy|development|pm|agent",
  "task_title": "short imperative title",
  "task_priority": 2,
  "task_sections": [
    {"heading": "Goal", "content": "what done looks like"},
    {"heading": "Context", "content": "relevant background from the email"}
  ],
  "draft_reply": "reply text addressed to the sender",
  "reasoning": "one sentence on why this category and role",
  "confidence": 0.8
}
task_sections must have 2 to 4 entries and one heading must be "Goal".
task_priority is 1 (urgent) to 4 (low).`
