package extraction

import "taskboard/internal/model"

// ResolveAssignee maps a triage routing role to a concrete roster member.
// The first member carrying the role wins. When no member matches, the PM
// is the universal fallback; when there is no PM either, nil is returned
// and the caller keeps the task unassigned.
func ResolveAssignee(roster []model.TeamMember, role model.Role) *model.TeamMember {
	for i := range roster {
		if roster[i].Role == role {
			return &roster[i]
		}
	}
	if role != model.RolePM {
		for i := range roster {
			if roster[i].Role == model.RolePM {
				return &roster[i]
			}
		}
	}
	return nil
}
