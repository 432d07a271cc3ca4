package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a profile can hold
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleTeamLeader      Role = "team-leader"
	RoleMailer          Role = "mailer"
	RolePendingApproval Role = "pending_approval"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeamLeader, RoleMailer, RolePendingApproval:
		return true
	}
	return false
}

// IsApproved reports whether the role has been granted by an admin
func (r Role) IsApproved() bool {
	return r == RoleAdmin || r == RoleTeamLeader || r == RoleMailer
}

// ParseRole converts a stored or submitted role string, rejecting unknown values
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// ResourceKind identifies one of the shared infrastructure resource types
type ResourceKind string

const (
	ResourceKindServer    ResourceKind = "server"
	ResourceKindProxy     ResourceKind = "proxy"
	ResourceKindRDP       ResourceKind = "rdp"
	ResourceKindSeedEmail ResourceKind = "seed_email"
)

// AllResourceKinds lists every resource kind in a stable order
var AllResourceKinds = []ResourceKind{
	ResourceKindServer,
	ResourceKindProxy,
	ResourceKindRDP,
	ResourceKindSeedEmail,
}

// IsValid checks if the ResourceKind is valid
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceKindServer, ResourceKindProxy, ResourceKindRDP, ResourceKindSeedEmail:
		return true
	}
	return false
}

// ParseResourceKind accepts the singular kind or its table name ("servers", "seed-emails")
func ParseResourceKind(s string) (ResourceKind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "-", "_")
	switch v {
	case "server", "servers":
		return ResourceKindServer, nil
	case "proxy", "proxies":
		return ResourceKindProxy, nil
	case "rdp", "rdps":
		return ResourceKindRDP, nil
	case "seed_email", "seed_emails":
		return ResourceKindSeedEmail, nil
	}
	return "", fmt.Errorf("unknown resource kind %q", s)
}

// TableName returns the table holding resources of this kind
func (k ResourceKind) TableName() string {
	switch k {
	case ResourceKindServer:
		return "servers"
	case ResourceKindProxy:
		return "proxies"
	case ResourceKindRDP:
		return "rdps"
	case ResourceKindSeedEmail:
		return "seed_emails"
	}
	return ""
}

// KeyColumn returns the column used to detect duplicate resources within a team
func (k ResourceKind) KeyColumn() string {
	switch k {
	case ResourceKindServer:
		return "ip_address"
	case ResourceKindProxy:
		return "connection_string"
	case ResourceKindRDP:
		return "alias"
	case ResourceKindSeedEmail:
		return "email_address"
	}
	return ""
}

// RequiresReturnApproval reports whether a return request must be approved by a team leader.
// Only servers carry the pending approval sub-state.
func (k ResourceKind) RequiresReturnApproval() bool {
	return k == ResourceKindServer
}

// ResourceStatus is the lifecycle state of a resource
type ResourceStatus string

const (
	StatusActive                ResourceStatus = "active"
	StatusMaintenance           ResourceStatus = "maintenance"
	StatusProblem               ResourceStatus = "problem"
	StatusPendingReturnApproval ResourceStatus = "pending_return_approval"
	StatusReturned              ResourceStatus = "returned"
	StatusBanned                ResourceStatus = "banned"
	StatusSlow                  ResourceStatus = "slow"
	StatusWarmup                ResourceStatus = "warmup"
	StatusCooldown              ResourceStatus = "cooldown"
)

var kindStatuses = map[ResourceKind][]ResourceStatus{
	ResourceKindServer:    {StatusActive, StatusMaintenance, StatusProblem, StatusPendingReturnApproval, StatusReturned},
	ResourceKindProxy:     {StatusActive, StatusSlow, StatusBanned, StatusReturned},
	ResourceKindRDP:       {StatusActive, StatusBanned, StatusReturned},
	ResourceKindSeedEmail: {StatusActive, StatusWarmup, StatusCooldown, StatusBanned, StatusReturned},
}

// Statuses returns the statuses a resource of this kind may hold
func (k ResourceKind) Statuses() []ResourceStatus {
	return kindStatuses[k]
}

// IsValidFor checks whether the status belongs to the kind's state set
func (s ResourceStatus) IsValidFor(kind ResourceKind) bool {
	for _, candidate := range kindStatuses[kind] {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsOperational reports whether the status can be set or left through a plain status edit.
// The return workflow states are excluded.
func (s ResourceStatus) IsOperational() bool {
	return s != StatusPendingReturnApproval && s != StatusReturned
}

// ParseResourceStatus validates a status string for a kind, rejecting unknown values
func ParseResourceStatus(kind ResourceKind, s string) (ResourceStatus, error) {
	status := ResourceStatus(strings.TrimSpace(s))
	if !status.IsValidFor(kind) {
		return "", fmt.Errorf("status %q is not valid for %s", s, kind)
	}
	return status, nil
}
