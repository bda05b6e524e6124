package dto

import (
	"reception/internal/domains/room/model"
	"reception/shared"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number string `json:"number"    validate:"required,max=20"`
	Floor  int    `json:"floor"     validate:"required,min=0"`
	Type   string `json:"room_type" validate:"required,max=50"`
	Status string `json:"status"    validate:"omitempty,oneof=vacant occupied cleaning maintenance out_of_service"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusVacant
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		Floor:  c.Floor,
		Type:   c.Type,
		Status: status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number string `db:"number"    json:"number"    validate:"omitempty,max=20"`
	Floor  *int   `db:"floor"     json:"floor"     validate:"omitempty,min=0"`
	Type   string `db:"room_type" json:"room_type" validate:"omitempty,max=50"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=vacant occupied cleaning maintenance out_of_service"`
}

type RoomResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Floor  int    `json:"floor"`
	Type   string `json:"room_type"`
	Status string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Floor = model.Floor
	r.Type = model.Type
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
