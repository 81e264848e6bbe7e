package repository

import (
	"database/sql"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db *sql.DB, apiRequest model.APIRequest) (*model.APIRequest, error)
	SetDuration(db *sql.DB, apiRequestID uuid.UUID, durationMs int64) error
}

type apiRequestRepositoryHandler struct{}

func NewApiRequestRepository() ApiRequestRepository {
	return apiRequestRepositoryHandler{}
}

func (h apiRequestRepositoryHandler) Add(db *sql.DB, apiRequest model.APIRequest) (*model.APIRequest, error) {
	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns).
		MODEL(apiRequest).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &out, nil
}

func (h apiRequestRepositoryHandler) SetDuration(db *sql.DB, apiRequestID uuid.UUID, durationMs int64) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.DurationMs).
		SET(postgres.Int(durationMs)).
		WHERE(table.APIRequest.APIRequestID.EQ(
			postgres.UUID(apiRequestID),
		))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to set api request duration: %w", err)
	}

	return nil
}
