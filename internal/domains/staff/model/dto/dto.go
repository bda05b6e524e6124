package dto

import (
	"reception/internal/domains/staff/model"
	"reception/shared"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	FullName   string `json:"full_name" validate:"required,max=255"`
	Role       string `json:"role" validate:"required,oneof=superadmin admin staff technician supervisor"`
	Department string `json:"department" validate:"required,oneof=maintenance front_desk housekeeping"`
}

func (c *CreateStaffRequest) ToModel(user, hashedPassword string) model.Staff {
	fullName := c.FullName

	return model.Staff{
		ID:         uuid.NewString(),
		Email:      c.Email,
		Password:   hashedPassword,
		Role:       c.Role,
		FullName:   &fullName,
		Department: c.Department,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	FullName   string `db:"full_name" json:"full_name" validate:"omitempty,max=255"`
	Role       string `db:"role" json:"role" validate:"omitempty,oneof=superadmin admin staff technician supervisor"`
	Department string `db:"department" json:"department" validate:"omitempty,oneof=maintenance front_desk housekeeping"`
	Active     *bool  `db:"active" json:"active" validate:"omitempty"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.Department = model.Department
	r.Active = model.Active

	if model.FullName != nil {
		r.FullName = *model.FullName
	} else {
		r.FullName = constant.Empty
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
