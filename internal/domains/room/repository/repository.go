package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"lodge/shared/timezone"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	InsertBulk(ctx context.Context, models []model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateStatus(ctx context.Context, id string, from, to model.RoomStatus) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteAll(ctx context.Context) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatus flips a room's status only when the current status still equals
// from, reporting through the return value whether the row was claimed. An
// empty from skips the guard and sets the status unconditionally.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id string, from, to model.RoomStatus) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateStatus")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = :to, %s = :modified_at WHERE %s = :id",
		model.TableName, model.FieldStatus, constant.FieldModifiedAt, model.FieldID)
	args := map[string]any{
		"to":          string(to),
		"modified_at": timezone.Now(),
		"id":          id,
	}

	if from != "" {
		query += fmt.Sprintf(" AND %s = :from", model.FieldStatus)
		args["from"] = string(from)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update status (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}
