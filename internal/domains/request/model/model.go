package model

import (
	"time"

	"reception/shared/model"
)

const (
	TableName  = "maintenance_requests"
	EntityName = "maintenance_request"

	FieldID                = "id"
	FieldRoomID            = "room_id"
	FieldReportedBy        = "reported_by"
	FieldCategory          = "category"
	FieldDescription       = "description"
	FieldPriority          = "priority"
	FieldStatus            = "status"
	FieldAssignedTo        = "assigned_to"
	FieldReportedAt        = "reported_at"
	FieldScheduledDate     = "scheduled_date"
	FieldStartedAt         = "started_at"
	FieldCompletedAt       = "completed_at"
	FieldRoomAvailable     = "room_available"
	FieldEstimatedDowntime = "estimated_downtime_minutes"
	FieldEstimatedCost     = "estimated_cost"
	FieldActualCost        = "actual_cost"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusClosed     Status = "closed"
	StatusCancelled  Status = "cancelled"
)

// Transitions move forward only. Cancellation is reachable from every
// non-terminal state.
var validTransitions = map[Status][]Status{
	StatusOpen:       {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusClosed, StatusCancelled},
	StatusClosed:     {},
	StatusCancelled:  {},
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

func (s Status) Terminal() bool {
	return len(validTransitions[s]) == 0
}

type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityNormal    Priority = "normal"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityEmergency:
		return true
	default:
		return false
	}
}

func (p Priority) Urgent() bool {
	return p == PriorityHigh || p == PriorityEmergency
}

type MaintenanceRequest struct {
	ID                string     `db:"id"`
	RoomID            string     `db:"room_id"`
	ReportedBy        string     `db:"reported_by"`
	Category          string     `db:"category"`
	Description       string     `db:"description"`
	Priority          Priority   `db:"priority"`
	Status            Status     `db:"status"`
	AssignedTo        *string    `db:"assigned_to"`
	ReportedAt        time.Time  `db:"reported_at"`
	ScheduledDate     *time.Time `db:"scheduled_date"`
	StartedAt         *time.Time `db:"started_at"`
	CompletedAt       *time.Time `db:"completed_at"`
	RoomAvailable     bool       `db:"room_available"`
	EstimatedDowntime *int       `db:"estimated_downtime_minutes"`
	EstimatedCost     int64      `db:"estimated_cost"`
	ActualCost        int64      `db:"actual_cost"`
	model.Metadata
}
