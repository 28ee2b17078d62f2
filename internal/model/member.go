package model

import "strings"

// Role is the coarse routing category of a team member.
type Role string

const (
	RoleDesign        Role = "design"
	RoleStrategy      Role = "strategy"
	RoleDevelopment   Role = "development"
	RolePM            Role = "pm"
	RoleContentWriter Role = "content_writer"
	RoleAgent         Role = "agent"
	RoleMember        Role = "member"

	// RoleUnknown marks a role string this service does not recognize.
	// Unknown roles must never silently fall through role matching.
	RoleUnknown Role = "unknown"
)

// ParseRole maps a raw role string to a closed Role value.
// Empty input is treated as the generic member role.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleDesign:
		return RoleDesign
	case RoleStrategy:
		return RoleStrategy
	case RoleDevelopment:
		return RoleDevelopment
	case RolePM:
		return RolePM
	case RoleContentWriter:
		return RoleContentWriter
	case RoleAgent:
		return RoleAgent
	case RoleMember, "":
		return RoleMember
	default:
		return RoleUnknown
	}
}

// Valid reports whether the role is one of the known routing categories.
func (r Role) Valid() bool {
	return r != RoleUnknown && ParseRole(string(r)) == r
}

// TeamMember is one entry of the roster snapshot handed to the extraction core.
type TeamMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        Role   `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectRef is a project the extraction core may link tasks to.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
