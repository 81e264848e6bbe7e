package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RiskTolerance string

const (
	RiskTolerance_Low    RiskTolerance = "LOW"
	RiskTolerance_Medium RiskTolerance = "MEDIUM"
	RiskTolerance_High   RiskTolerance = "HIGH"
)

type InvestorProfile struct {
	InvestorID          uuid.UUID
	PreferredIndustries []string
	// invariant: MinInvestment <= MaxInvestment
	MinInvestment   decimal.Decimal
	MaxInvestment   decimal.Decimal
	RiskTolerance   RiskTolerance
	InvestmentTypes []string
	// optional goval expression granting a bonus on top of the weighted
	// criteria. empty string means no custom criteria.
	CriteriaExpression string
}

func (p InvestorProfile) PrefersIndustry(industry string) bool {
	for _, preferred := range p.PreferredIndustries {
		if strings.EqualFold(preferred, industry) {
			return true
		}
	}
	return false
}

func (p InvestorProfile) AcceptsCategory(category string) bool {
	for _, t := range p.InvestmentTypes {
		if strings.EqualFold(t, category) {
			return true
		}
	}
	return false
}

type MatchResult struct {
	OpportunityID uuid.UUID
	MatchScore    int
	MatchReasons  []string
}
