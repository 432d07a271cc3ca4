package models

import (
	"strings"

	"github.com/google/uuid"
)

// ResourceCore holds the columns shared by every resource table.
// OwnerMailerID and TeamID are immutable after creation; Status only moves
// through lifecycle transitions.
type ResourceCore struct {
	BaseModel
	OwnerMailerID uuid.UUID      `json:"owner_mailer_id" gorm:"type:uuid;not null;index"`
	TeamID        uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index"`
	Status        ResourceStatus `json:"status" gorm:"type:varchar(32);not null;default:'active';index"`
}

// Resource is implemented by every resource table model
type Resource interface {
	Kind() ResourceKind
	GetCore() *ResourceCore
	// NaturalKey is the value of the kind's dedupe column, normalised
	NaturalKey() string
	Payload() map[string]string
	SetPayload(fields map[string]string)
}

// PayloadColumns lists the editable, type-specific columns of a kind
func (k ResourceKind) PayloadColumns() []string {
	switch k {
	case ResourceKindServer:
		return []string{"ip_address", "provider", "hostname", "notes"}
	case ResourceKindProxy:
		return []string{"connection_string", "provider", "notes"}
	case ResourceKindRDP:
		return []string{"alias", "host", "username", "notes"}
	case ResourceKindSeedEmail:
		return []string{"email_address", "provider", "recovery_email", "notes"}
	}
	return nil
}

// NewResource returns an empty model for the kind, or nil for an unknown kind
func NewResource(kind ResourceKind) Resource {
	switch kind {
	case ResourceKindServer:
		return &Server{}
	case ResourceKindProxy:
		return &Proxy{}
	case ResourceKindRDP:
		return &RDP{}
	case ResourceKindSeedEmail:
		return &SeedEmail{}
	}
	return nil
}

// NormalizeKey normalises a dedupe key the same way NaturalKey does
func NormalizeKey(kind ResourceKind, key string) string {
	key = strings.TrimSpace(key)
	if kind == ResourceKindSeedEmail {
		return strings.ToLower(key)
	}
	return key
}

// Server is a sending server
type Server struct {
	ResourceCore
	IPAddress string `json:"ip_address" gorm:"size:45;not null;index"`
	Provider  string `json:"provider" gorm:"size:100"`
	Hostname  string `json:"hostname" gorm:"size:255"`
	Notes     string `json:"notes" gorm:"size:1000"`
}

// TableName returns the table name for Server
func (Server) TableName() string { return "servers" }

func (s *Server) Kind() ResourceKind     { return ResourceKindServer }
func (s *Server) GetCore() *ResourceCore { return &s.ResourceCore }
func (s *Server) NaturalKey() string     { return NormalizeKey(ResourceKindServer, s.IPAddress) }
func (s *Server) Payload() map[string]string {
	return map[string]string{
		"ip_address": s.IPAddress,
		"provider":   s.Provider,
		"hostname":   s.Hostname,
		"notes":      s.Notes,
	}
}

func (s *Server) SetPayload(fields map[string]string) {
	if v, ok := fields["ip_address"]; ok {
		s.IPAddress = strings.TrimSpace(v)
	}
	if v, ok := fields["provider"]; ok {
		s.Provider = strings.TrimSpace(v)
	}
	if v, ok := fields["hostname"]; ok {
		s.Hostname = strings.TrimSpace(v)
	}
	if v, ok := fields["notes"]; ok {
		s.Notes = v
	}
}

// Proxy is a proxy endpoint used for sending
type Proxy struct {
	ResourceCore
	ConnectionString string `json:"connection_string" gorm:"size:500;not null;index"`
	Provider         string `json:"provider" gorm:"size:100"`
	Notes            string `json:"notes" gorm:"size:1000"`
}

// TableName returns the table name for Proxy
func (Proxy) TableName() string { return "proxies" }

func (p *Proxy) Kind() ResourceKind     { return ResourceKindProxy }
func (p *Proxy) GetCore() *ResourceCore { return &p.ResourceCore }
func (p *Proxy) NaturalKey() string     { return NormalizeKey(ResourceKindProxy, p.ConnectionString) }
func (p *Proxy) Payload() map[string]string {
	return map[string]string{
		"connection_string": p.ConnectionString,
		"provider":          p.Provider,
		"notes":             p.Notes,
	}
}

func (p *Proxy) SetPayload(fields map[string]string) {
	if v, ok := fields["connection_string"]; ok {
		p.ConnectionString = strings.TrimSpace(v)
	}
	if v, ok := fields["provider"]; ok {
		p.Provider = strings.TrimSpace(v)
	}
	if v, ok := fields["notes"]; ok {
		p.Notes = v
	}
}

// RDP is a remote desktop box, referenced by a credentials alias
type RDP struct {
	ResourceCore
	Alias    string `json:"alias" gorm:"size:100;not null;index"`
	Host     string `json:"host" gorm:"size:255"`
	Username string `json:"username" gorm:"size:100"`
	Notes    string `json:"notes" gorm:"size:1000"`
}

// TableName returns the table name for RDP
func (RDP) TableName() string { return "rdps" }

func (r *RDP) Kind() ResourceKind     { return ResourceKindRDP }
func (r *RDP) GetCore() *ResourceCore { return &r.ResourceCore }
func (r *RDP) NaturalKey() string     { return NormalizeKey(ResourceKindRDP, r.Alias) }
func (r *RDP) Payload() map[string]string {
	return map[string]string{
		"alias":    r.Alias,
		"host":     r.Host,
		"username": r.Username,
		"notes":    r.Notes,
	}
}

func (r *RDP) SetPayload(fields map[string]string) {
	if v, ok := fields["alias"]; ok {
		r.Alias = strings.TrimSpace(v)
	}
	if v, ok := fields["host"]; ok {
		r.Host = strings.TrimSpace(v)
	}
	if v, ok := fields["username"]; ok {
		r.Username = strings.TrimSpace(v)
	}
	if v, ok := fields["notes"]; ok {
		r.Notes = v
	}
}

// SeedEmail is a seed inbox used to monitor deliverability
type SeedEmail struct {
	ResourceCore
	EmailAddress  string `json:"email_address" gorm:"size:255;not null;index"`
	Provider      string `json:"provider" gorm:"size:100"`
	RecoveryEmail string `json:"recovery_email" gorm:"size:255"`
	Notes         string `json:"notes" gorm:"size:1000"`
}

// TableName returns the table name for SeedEmail
func (SeedEmail) TableName() string { return "seed_emails" }

func (e *SeedEmail) Kind() ResourceKind     { return ResourceKindSeedEmail }
func (e *SeedEmail) GetCore() *ResourceCore { return &e.ResourceCore }
func (e *SeedEmail) NaturalKey() string     { return NormalizeKey(ResourceKindSeedEmail, e.EmailAddress) }
func (e *SeedEmail) Payload() map[string]string {
	return map[string]string{
		"email_address":  e.EmailAddress,
		"provider":       e.Provider,
		"recovery_email": e.RecoveryEmail,
		"notes":          e.Notes,
	}
}

func (e *SeedEmail) SetPayload(fields map[string]string) {
	if v, ok := fields["email_address"]; ok {
		e.EmailAddress = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := fields["provider"]; ok {
		e.Provider = strings.TrimSpace(v)
	}
	if v, ok := fields["recovery_email"]; ok {
		e.RecoveryEmail = strings.TrimSpace(v)
	}
	if v, ok := fields["notes"]; ok {
		e.Notes = v
	}
}
