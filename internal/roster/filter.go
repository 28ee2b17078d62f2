package roster

import "taskboard/internal/model"

// Predicate decides whether a member stays in a filtered roster view.
type Predicate func(model.TeamMember) bool

// Filter returns the members satisfying every predicate. Call sites that
// want to hide members from extraction (the agent account, say) filter
// here instead of the core special-casing roles.
func Filter(members []model.TeamMember, preds ...Predicate) []model.TeamMember {
	out := make([]model.TeamMember, 0, len(members))
next:
	for _, m := range members {
		for _, p := range preds {
			if !p(m) {
				continue next
			}
		}
		out = append(out, m)
	}
	return out
}

// ExcludeRole drops members carrying the given role.
func ExcludeRole(role model.Role) Predicate {
	return func(m model.TeamMember) bool {
		return m.Role != role
	}
}

// WithRole keeps only members carrying the given role.
func WithRole(role model.Role) Predicate {
	return func(m model.TeamMember) bool {
		return m.Role == role
	}
}
