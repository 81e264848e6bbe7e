package repository

import (
	"database/sql"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type InvestmentRepository interface {
	ListByInvestor(investorID uuid.UUID) ([]model.Investment, error)
}

type investmentRepositoryHandler struct {
	Db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) InvestmentRepository {
	return investmentRepositoryHandler{Db: db}
}

func (h investmentRepositoryHandler) ListByInvestor(investorID uuid.UUID) ([]model.Investment, error) {
	query := table.Investment.
		SELECT(table.Investment.AllColumns).
		WHERE(table.Investment.InvestorID.EQ(
			postgres.UUID(investorID),
		)).
		ORDER_BY(table.Investment.CreatedAt.ASC())

	out := []model.Investment{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments for investor %s: %w", investorID, err)
	}

	return out, nil
}
