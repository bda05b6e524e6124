package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reception/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "work_orders"
	EntityName = "work_order"

	FieldID                = "id"
	FieldRequestID         = "request_id"
	FieldTechnicianID      = "technician_id"
	FieldScheduledStart    = "scheduled_start"
	FieldActualStart       = "actual_start"
	FieldActualEnd         = "actual_end"
	FieldRequiredParts     = "required_parts"
	FieldRequiredTools     = "required_tools"
	FieldWorkPerformed     = "work_performed"
	FieldPartsUsed         = "parts_used"
	FieldLaborHours        = "labor_hours"
	FieldVerifiedBy        = "verified_by"
	FieldVerificationNotes = "verification_notes"
	FieldStatus            = "status"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusVerified   Status = "verified"
)

var validTransitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {StatusVerified},
	StatusVerified:   {},
}

func (s Status) Valid() bool {
	_, ok := validTransitions[s]

	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ActiveStatuses count against a technician's concurrency cap.
func ActiveStatuses() []string {
	return []string{string(StatusScheduled), string(StatusInProgress)}
}

// PartUsage records one consumed part line on a completed order.
type PartUsage struct {
	Code     string `json:"code"     validate:"required,max=50"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// PartUsageList persists as a JSONB column.
type PartUsageList []PartUsage

func (p PartUsageList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parts used: %w", err)
	}

	return string(raw), nil
}

func (p *PartUsageList) Scan(src any) error {
	if src == nil {
		*p = nil

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported source type for parts used")
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("failed to unmarshal parts used: %w", err)
	}

	return nil
}

type WorkOrder struct {
	ID                string         `db:"id"`
	RequestID         string         `db:"request_id"`
	TechnicianID      string         `db:"technician_id"`
	ScheduledStart    time.Time      `db:"scheduled_start"`
	ActualStart       *time.Time     `db:"actual_start"`
	ActualEnd         *time.Time     `db:"actual_end"`
	RequiredParts     pq.StringArray `db:"required_parts"`
	RequiredTools     pq.StringArray `db:"required_tools"`
	WorkPerformed     string         `db:"work_performed"`
	PartsUsed         PartUsageList  `db:"parts_used"`
	LaborHours        float64        `db:"labor_hours"`
	VerifiedBy        *string        `db:"verified_by"`
	VerificationNotes string         `db:"verification_notes"`
	Status            Status         `db:"status"`
	model.Metadata
}

// CompletionMinutes reports wall-clock duration of the executed work, zero
// when either endpoint is missing.
func (w *WorkOrder) CompletionMinutes() float64 {
	if w.ActualStart == nil || w.ActualEnd == nil {
		return 0
	}

	return w.ActualEnd.Sub(*w.ActualStart).Minutes()
}
