package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reception/infras/otel"
	"reception/infras/postgres"
	"reception/internal/domains/preventive/model"
	gDto "reception/shared/dto"
	gRepo "reception/shared/repository"
)

type Preventive interface {
	Insert(ctx context.Context, model model.PreventiveSchedule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PreventiveSchedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PreventiveSchedule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateChecked(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PreventiveSchedule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Preventive {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PreventiveSchedule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
