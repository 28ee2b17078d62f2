package usecase

import (
	"regexp"
	"strings"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
)

// Fallback extraction patterns. Each rule strips its matched substring
// from the title draft whether or not it resolved to a roster entry.
var (
	fallbackAssigneeRe = regexp.MustCompile(`(?i)(?:assign(?:ed)? to |@)(\w+)`)
	fallbackProjectRe  = regexp.MustCompile(`(?i)project[:\s]+(\w+)`)
	fallbackDueRe      = regexp.MustCompile(`(?i)due (today|tomorrow|in (\d+) days?)`)
	fallbackUrgentRe   = regexp.MustCompile(`(?i)\b(urgent|asap|critical)\b`)

	collapseSpaceRe = regexp.MustCompile(`\s+`)
	dupCommaRe      = regexp.MustCompile(`(?:\s*,){2,}`)
)

// fallbackBatch wraps the single fallback task as a batch, both pinned to
// the fallback confidence ceiling.
func (uc *implUseCase) fallbackBatch(input extraction.ExtractInput) model.ParsedTaskBatch {
	return model.ParsedTaskBatch{
		Tasks:      []model.ParsedTask{uc.fallbackTask(input.Text, input.Roster, input.Projects)},
		Confidence: FallbackConfidence,
	}
}

// fallbackTask is the deterministic regex extractor. Weaker than the
// generation pathway on purpose: exact full-name assignee matches only,
// a three-phrase due-date vocabulary, no multi-task splitting.
func (uc *implUseCase) fallbackTask(text string, roster []model.TeamMember, projects []model.ProjectRef) model.ParsedTask {
	title := text
	out := model.ParsedTask{
		Priority:   model.PriorityDefault,
		Status:     model.StatusDoing,
		Confidence: FallbackConfidence,
	}

	if m := fallbackAssigneeRe.FindStringSubmatch(title); m != nil {
		name := m[1]
		for _, member := range roster {
			if strings.EqualFold(member.Name, name) {
				id := member.ID
				out.AssigneeID = &id
				break
			}
		}
		title = strings.Replace(title, m[0], " ", 1)
	}

	if m := fallbackProjectRe.FindStringSubmatch(title); m != nil {
		needle := strings.ToLower(m[1])
		for _, p := range projects {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				id := p.ID
				out.ProjectID = &id
				break
			}
		}
		title = strings.Replace(title, m[0], " ", 1)
	}

	if m := fallbackDueRe.FindStringSubmatch(title); m != nil {
		if due, err := uc.dateMath.DueAt(m[1], uc.now()); err == nil {
			out.DueAt = &due
		}
		title = strings.Replace(title, m[0], " ", 1)
	}

	if m := fallbackUrgentRe.FindStringSubmatch(title); m != nil {
		out.Priority = model.PriorityUrgent
		title = strings.Replace(title, m[0], " ", 1)
	}

	out.Title = cleanTitle(title, text)
	return out
}

// cleanTitle collapses whitespace and comma debris left behind by the
// stripping rules. An empty result falls back to the original unstripped
// input so the title is never empty.
func cleanTitle(stripped, original string) string {
	title := collapseSpaceRe.ReplaceAllString(stripped, " ")
	title = dupCommaRe.ReplaceAllString(title, ",")
	title = strings.TrimSpace(title)
	title = strings.Trim(title, ",:")
	title = strings.TrimSpace(title)
	if title == "" {
		return strings.TrimSpace(original)
	}
	return title
}
