// audit/model.go
package audit

import (
	"time"

	"github.com/goccy/go-json"
)

// AuditLog is one authorization decision.
type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	SubjectID     string          `json:"subject_id"`
	Role          string          `json:"role"`
	Issuer        string          `json:"issuer"`
	Action        string          `json:"action"`
	ResourceKind  string          `json:"resource_kind"`
	ResourceID    string          `json:"resource_id"`
	AccessGranted bool            `json:"access_granted"`
	DenyReason    string          `json:"deny_reason,omitempty"`
	Details       json.RawMessage `json:"details,omitempty"`
}

// Query narrows an audit search. Empty fields are not filtered on.
type Query struct {
	From       time.Time
	To         time.Time
	SubjectID  string
	ResourceID string
	Limit      int
}
