package repository

import (
	"database/sql"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type InvestorProfileRepository interface {
	Get(investorID uuid.UUID) (*model.InvestorProfile, error)
}

type investorProfileRepositoryHandler struct {
	Db *sql.DB
}

func NewInvestorProfileRepository(db *sql.DB) InvestorProfileRepository {
	return investorProfileRepositoryHandler{Db: db}
}

func (h investorProfileRepositoryHandler) Get(investorID uuid.UUID) (*model.InvestorProfile, error) {
	query := table.InvestorProfile.
		SELECT(table.InvestorProfile.AllColumns).
		WHERE(table.InvestorProfile.InvestorID.EQ(
			postgres.UUID(investorID),
		))

	out := model.InvestorProfile{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get investor profile %s: %w", investorID, err)
	}

	return &out, nil
}
