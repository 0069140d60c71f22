package model

import "time"

// Cluster is the persisted record of a generated cluster descriptor. The
// rendered YAML is kept verbatim so a descriptor can be re-fetched exactly as
// it was handed out.
type Cluster struct {
	// required: true
	ID uint `json:"id" gorm:"primaryKey"`
	// required: true
	CreatedAt time.Time `json:"createdAt"`
	// required: true
	UpdatedAt time.Time `json:"updatedAt"`
	// required: true
	Name string `json:"name" gorm:"uniqueIndex"`
	// required: true
	Site string `json:"site"`
	// required: true
	OCPVersion string `json:"ocpVersion"`
	// Path of the descriptor within a GitOps repository layout
	Path          string `json:"path"`
	Configuration []byte `json:"-"`
}
