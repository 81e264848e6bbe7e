package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FundingStage string

const (
	FundingStage_Seed   FundingStage = "SEED"
	FundingStage_Growth FundingStage = "GROWTH"
	FundingStage_Mature FundingStage = "MATURE"
)

// OpportunityFeatures is the read-only projection of an opportunity record
// that the scoring engine consumes.
type OpportunityFeatures struct {
	OpportunityID uuid.UUID
	Category      string
	Industry      string
	FundingGoal   decimal.Decimal
	MinInvestment decimal.Decimal
	// percent, e.g. 20 means a projected 20% return
	ProjectedRoi                 float64
	Description                  string
	EntrepreneurReliabilityScore float64
	FundingStage                 FundingStage
}

type RiskLevel string

const (
	RiskLevel_Low    RiskLevel = "LOW"
	RiskLevel_Medium RiskLevel = "MEDIUM"
	RiskLevel_High   RiskLevel = "HIGH"
)

// RiskLevelFromScore is the only mapping from a risk score to a tier. Keep
// the thresholds here - resolvers and services must not re-derive them.
func RiskLevelFromScore(score int) RiskLevel {
	if score < 30 {
		return RiskLevel_Low
	}
	if score < 60 {
		return RiskLevel_Medium
	}
	return RiskLevel_High
}

type RiskAssessment struct {
	RiskScore   int
	RiskLevel   RiskLevel
	RiskFactors []string
	Suggestions []string
	Source      AnalysisSource
}
