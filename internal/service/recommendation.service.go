package service

import (
	"context"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/domain"
	"fundmatch/internal/logger"
	"fundmatch/internal/repository"
	"strings"

	"github.com/google/uuid"
)

// neutral reliability used when an entrepreneur's activity can't be loaded
const neutralReliability = 50.0

// RecommendationService wires the stored records to the scoring engine. It
// reads from the store and returns results - persistence of scores stays
// with the caller.
type RecommendationService interface {
	RecommendForInvestor(ctx context.Context, investorID uuid.UUID) ([]domain.MatchResult, error)
	ScoreEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) (*domain.ReliabilityScore, error)
	AssessOpportunity(ctx context.Context, opportunityID uuid.UUID) (*domain.RiskAssessment, error)
}

type recommendationServiceHandler struct {
	OpportunityRepository     repository.OpportunityRepository
	InvestorProfileRepository repository.InvestorProfileRepository
	ActivityRepository        repository.EntrepreneurActivityRepository
	InvestmentRepository      repository.InvestmentRepository
	ReliabilityScorer         ReliabilityScorer
	RiskAssessor              RiskAssessor
	MatchEngine               MatchEngine
}

func NewRecommendationService(
	opportunityRepository repository.OpportunityRepository,
	investorProfileRepository repository.InvestorProfileRepository,
	activityRepository repository.EntrepreneurActivityRepository,
	investmentRepository repository.InvestmentRepository,
	reliabilityScorer ReliabilityScorer,
	riskAssessor RiskAssessor,
	matchEngine MatchEngine,
) RecommendationService {
	return recommendationServiceHandler{
		OpportunityRepository:     opportunityRepository,
		InvestorProfileRepository: investorProfileRepository,
		ActivityRepository:        activityRepository,
		InvestmentRepository:      investmentRepository,
		ReliabilityScorer:         reliabilityScorer,
		RiskAssessor:              riskAssessor,
		MatchEngine:               matchEngine,
	}
}

func (h recommendationServiceHandler) ScoreEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) (*domain.ReliabilityScore, error) {
	activity, err := h.ActivityRepository.Get(entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity for entrepreneur %s: %w", entrepreneurID, err)
	}

	notes := []string{}
	noteRows, err := h.ActivityRepository.ListNotes(entrepreneurID)
	if err != nil {
		// score without notes rather than failing the whole call
		logger.FromContext(ctx).Warnf("scoring %s without progress notes: %v", entrepreneurID, err)
	} else {
		for _, row := range noteRows {
			notes = append(notes, row.Note)
		}
	}

	score := h.ReliabilityScorer.Score(ctx, domain.ActivityMetrics{
		MilestoneUpdateFrequency: activity.MilestoneUpdateFrequency,
		ProfileCompleteness:      activity.ProfileCompleteness,
		OverdueMilestones:        int(activity.OverdueMilestones),
		CommunicationFrequency:   activity.CommunicationFrequency,
		ProgressNotes:            notes,
	})

	return &score, nil
}

func (h recommendationServiceHandler) AssessOpportunity(ctx context.Context, opportunityID uuid.UUID) (*domain.RiskAssessment, error) {
	opportunity, err := h.OpportunityRepository.Get(opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity %s: %w", opportunityID, err)
	}

	features := h.opportunityFeatures(ctx, *opportunity, map[uuid.UUID]float64{})
	assessment := h.RiskAssessor.Assess(ctx, features)

	return &assessment, nil
}

func (h recommendationServiceHandler) RecommendForInvestor(ctx context.Context, investorID uuid.UUID) ([]domain.MatchResult, error) {
	profile, err := h.InvestorProfileRepository.Get(investorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investor profile %s: %w", investorID, err)
	}
	investor := investorProfileToDomain(*profile)

	alreadyInvested := map[uuid.UUID]bool{}
	investments, err := h.InvestmentRepository.ListByInvestor(investorID)
	if err != nil {
		logger.FromContext(ctx).Warnf("recommending without investment history for %s: %v", investorID, err)
		investments = []model.Investment{}
	}
	for _, investment := range investments {
		alreadyInvested[investment.OpportunityID] = true
	}

	investor.PreferredIndustries = h.augmentPreferredIndustries(ctx, investor.PreferredIndustries, investments)

	opportunities, err := h.OpportunityRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	reliabilityByEntrepreneur := map[uuid.UUID]float64{}
	candidates := []domain.OpportunityFeatures{}
	for _, opportunity := range opportunities {
		if alreadyInvested[opportunity.OpportunityID] {
			continue
		}
		candidates = append(candidates, h.opportunityFeatures(ctx, opportunity, reliabilityByEntrepreneur))
	}

	return h.MatchEngine.Recommend(ctx, investor, candidates), nil
}

// augmentPreferredIndustries merges industries the investor has actually put
// money into with their stated preferences. The stored profile is not
// modified.
func (h recommendationServiceHandler) augmentPreferredIndustries(ctx context.Context, preferred []string, investments []model.Investment) []string {
	if len(investments) == 0 {
		return preferred
	}

	opportunityIDs := make([]uuid.UUID, 0, len(investments))
	for _, investment := range investments {
		opportunityIDs = append(opportunityIDs, investment.OpportunityID)
	}

	investedOpportunities, err := h.OpportunityRepository.ListByIDs(opportunityIDs)
	if err != nil {
		logger.FromContext(ctx).Warnf("could not resolve invested opportunities: %v", err)
		return preferred
	}

	seen := map[string]bool{}
	for _, industry := range preferred {
		seen[strings.ToLower(industry)] = true
	}

	merged := append([]string{}, preferred...)
	for _, opportunity := range investedOpportunities {
		key := strings.ToLower(opportunity.Industry)
		if opportunity.Industry != "" && !seen[key] {
			seen[key] = true
			merged = append(merged, opportunity.Industry)
		}
	}

	return merged
}

// opportunityFeatures projects a stored opportunity into engine input,
// computing the entrepreneur's reliability score on the way.
// reliabilityCache memoizes per-entrepreneur scores across one batch.
func (h recommendationServiceHandler) opportunityFeatures(ctx context.Context, opportunity model.Opportunity, reliabilityCache map[uuid.UUID]float64) domain.OpportunityFeatures {
	reliability, ok := reliabilityCache[opportunity.EntrepreneurID]
	if !ok {
		reliability = neutralReliability
		if score, err := h.ScoreEntrepreneur(ctx, opportunity.EntrepreneurID); err == nil {
			reliability = float64(score.Score)
		} else {
			logger.FromContext(ctx).Warnf(
				"using neutral reliability for entrepreneur %s: %v", opportunity.EntrepreneurID, err)
		}
		reliabilityCache[opportunity.EntrepreneurID] = reliability
	}

	return domain.OpportunityFeatures{
		OpportunityID:                opportunity.OpportunityID,
		Category:                     opportunity.Category,
		Industry:                     opportunity.Industry,
		FundingGoal:                  opportunity.FundingGoal,
		MinInvestment:                opportunity.MinInvestment,
		ProjectedRoi:                 opportunity.ProjectedRoi,
		Description:                  opportunity.Description,
		EntrepreneurReliabilityScore: reliability,
		FundingStage:                 domain.FundingStage(opportunity.FundingStage),
	}
}

func investorProfileToDomain(profile model.InvestorProfile) domain.InvestorProfile {
	criteriaExpression := ""
	if profile.CriteriaExpression != nil {
		criteriaExpression = *profile.CriteriaExpression
	}

	return domain.InvestorProfile{
		InvestorID:          profile.InvestorID,
		PreferredIndustries: splitList(profile.PreferredIndustries),
		InvestmentTypes:     splitList(profile.InvestmentTypes),
		MinInvestment:       profile.MinInvestment,
		MaxInvestment:       profile.MaxInvestment,
		RiskTolerance:       domain.RiskTolerance(profile.RiskTolerance),
		CriteriaExpression:  criteriaExpression,
	}
}

func splitList(csv string) []string {
	out := []string{}
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
