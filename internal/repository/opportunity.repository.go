package repository

import (
	"database/sql"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type OpportunityRepository interface {
	Get(opportunityID uuid.UUID) (*model.Opportunity, error)
	List() ([]model.Opportunity, error)
	ListByIDs(opportunityIDs []uuid.UUID) ([]model.Opportunity, error)
}

type opportunityRepositoryHandler struct {
	Db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) OpportunityRepository {
	return opportunityRepositoryHandler{Db: db}
}

func (h opportunityRepositoryHandler) Get(opportunityID uuid.UUID) (*model.Opportunity, error) {
	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		WHERE(table.Opportunity.OpportunityID.EQ(
			postgres.UUID(opportunityID),
		))

	out := model.Opportunity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity %s: %w", opportunityID, err)
	}

	return &out, nil
}

func (h opportunityRepositoryHandler) List() ([]model.Opportunity, error) {
	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		ORDER_BY(table.Opportunity.CreatedAt.ASC())

	out := []model.Opportunity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return out, nil
}

func (h opportunityRepositoryHandler) ListByIDs(opportunityIDs []uuid.UUID) ([]model.Opportunity, error) {
	if len(opportunityIDs) == 0 {
		return []model.Opportunity{}, nil
	}

	ids := make([]postgres.Expression, len(opportunityIDs))
	for i, id := range opportunityIDs {
		ids[i] = postgres.UUID(id)
	}

	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		WHERE(table.Opportunity.OpportunityID.IN(ids...)).
		ORDER_BY(table.Opportunity.CreatedAt.ASC())

	out := []model.Opportunity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities by ids: %w", err)
	}

	return out, nil
}
