package model

import "reception/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldFloor  = "floor"
	FieldType   = "room_type"
	FieldStatus = "status"
)

// Status is the housekeeping state of a room.
type Status string

const (
	StatusVacant       Status = "vacant"
	StatusOccupied     Status = "occupied"
	StatusCleaning     Status = "cleaning"
	StatusMaintenance  Status = "maintenance"
	StatusOutOfService Status = "out_of_service"
)

var validTransitions = map[Status][]Status{
	StatusVacant:       {StatusOccupied, StatusCleaning, StatusMaintenance, StatusOutOfService},
	StatusOccupied:     {StatusCleaning, StatusMaintenance},
	StatusCleaning:     {StatusVacant, StatusMaintenance, StatusOutOfService},
	StatusMaintenance:  {StatusVacant, StatusCleaning, StatusOutOfService},
	StatusOutOfService: {StatusMaintenance, StatusVacant},
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

// MaintenanceEvent is emitted by the work-order lifecycle toward the room
// collaborator.
type MaintenanceEvent string

const (
	EventMaintenanceRequired  MaintenanceEvent = "maintenance_required"
	EventMaintenanceCompleted MaintenanceEvent = "maintenance_completed"
)

type Room struct {
	ID     string `db:"id"`
	Number string `db:"number"`
	Floor  int    `db:"floor"`
	Type   string `db:"room_type"`
	Status Status `db:"status"`
	model.Metadata
}
