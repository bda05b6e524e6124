package model

import (
	"time"

	"reception/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "preventive_schedules"
	EntityName = "preventive_schedule"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldMaintenanceType = "maintenance_type"
	FieldFrequency       = "frequency"
	FieldLastPerformed   = "last_performed"
	FieldNextDue         = "next_due"
	FieldStatus          = "status"
	FieldChecklist       = "checklist"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusOverdue, StatusCompleted:
		return true
	default:
		return false
	}
}

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// NextFrom computes the following due date from a completion moment.
func (f Frequency) NextFrom(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

type PreventiveSchedule struct {
	ID              string         `db:"id"`
	RoomID          string         `db:"room_id"`
	MaintenanceType string         `db:"maintenance_type"`
	Frequency       Frequency      `db:"frequency"`
	LastPerformed   *time.Time     `db:"last_performed"`
	NextDue         time.Time      `db:"next_due"`
	Status          Status         `db:"status"`
	Checklist       pq.StringArray `db:"checklist"`
	model.Metadata
}
