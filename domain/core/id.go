package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	ReportID     ID
	WorkflowID   ID
	HypothesisID ID
	SimulationID ID
)

// String conversions for domain IDs
func (id ReportID) String() string     { return ID(id).String() }
func (id WorkflowID) String() string   { return ID(id).String() }
func (id HypothesisID) String() string { return ID(id).String() }
func (id SimulationID) String() string { return ID(id).String() }

// NewReportID mints a fresh report identifier
func NewReportID() ReportID {
	return ReportID(NewID())
}

// ParseReportID parses a string into ReportID
func ParseReportID(s string) (ReportID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("report ID cannot be empty")
	}
	return ReportID(s), nil
}

// ParseWorkflowID parses a string into WorkflowID
func ParseWorkflowID(s string) (WorkflowID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("workflow ID cannot be empty")
	}
	return WorkflowID(s), nil
}

// ParseHypothesisID parses a string into HypothesisID
func ParseHypothesisID(s string) (HypothesisID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("hypothesis ID cannot be empty")
	}
	return HypothesisID(s), nil
}
