package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Records are create-only, so there is no last-updated pair.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // Subject of the session that created the record
}
