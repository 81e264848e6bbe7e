package repository

import (
	"database/sql"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type EntrepreneurActivityRepository interface {
	Get(entrepreneurID uuid.UUID) (*model.EntrepreneurActivity, error)
	ListNotes(entrepreneurID uuid.UUID) ([]model.ProgressNote, error)
}

type entrepreneurActivityRepositoryHandler struct {
	Db *sql.DB
}

func NewEntrepreneurActivityRepository(db *sql.DB) EntrepreneurActivityRepository {
	return entrepreneurActivityRepositoryHandler{Db: db}
}

func (h entrepreneurActivityRepositoryHandler) Get(entrepreneurID uuid.UUID) (*model.EntrepreneurActivity, error) {
	query := table.EntrepreneurActivity.
		SELECT(table.EntrepreneurActivity.AllColumns).
		WHERE(table.EntrepreneurActivity.EntrepreneurID.EQ(
			postgres.UUID(entrepreneurID),
		))

	out := model.EntrepreneurActivity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity for entrepreneur %s: %w", entrepreneurID, err)
	}

	return &out, nil
}

func (h entrepreneurActivityRepositoryHandler) ListNotes(entrepreneurID uuid.UUID) ([]model.ProgressNote, error) {
	query := table.ProgressNote.
		SELECT(table.ProgressNote.AllColumns).
		WHERE(table.ProgressNote.EntrepreneurID.EQ(
			postgres.UUID(entrepreneurID),
		)).
		ORDER_BY(table.ProgressNote.CreatedAt.ASC())

	out := []model.ProgressNote{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress notes for entrepreneur %s: %w", entrepreneurID, err)
	}

	return out, nil
}
