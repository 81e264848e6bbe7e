package service

import (
	"context"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	mock_repository "fundmatch/internal/repository/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recommendationMocks struct {
	opportunity     *mock_repository.MockOpportunityRepository
	investorProfile *mock_repository.MockInvestorProfileRepository
	activity        *mock_repository.MockEntrepreneurActivityRepository
	investment      *mock_repository.MockInvestmentRepository
}

func newRecommendationService(t *testing.T) (RecommendationService, recommendationMocks) {
	ctrl := gomock.NewController(t)
	mocks := recommendationMocks{
		opportunity:     mock_repository.NewMockOpportunityRepository(ctrl),
		investorProfile: mock_repository.NewMockInvestorProfileRepository(ctrl),
		activity:        mock_repository.NewMockEntrepreneurActivityRepository(ctrl),
		investment:      mock_repository.NewMockInvestmentRepository(ctrl),
	}

	riskAssessor := NewRiskAssessor()
	svc := NewRecommendationService(
		mocks.opportunity,
		mocks.investorProfile,
		mocks.activity,
		mocks.investment,
		NewReliabilityScorer(NewTextSignalAnalyzer(nil), nil),
		riskAssessor,
		NewMatchEngine(riskAssessor, NewCriteriaService(), nil),
	)
	return svc, mocks
}

func reliableActivity(entrepreneurID uuid.UUID) *model.EntrepreneurActivity {
	return &model.EntrepreneurActivity{
		EntrepreneurID:           entrepreneurID,
		MilestoneUpdateFrequency: 7,
		ProfileCompleteness:      100,
		OverdueMilestones:        0,
		CommunicationFrequency:   3,
	}
}

func storedOpportunity(entrepreneurID uuid.UUID, industry string) model.Opportunity {
	return model.Opportunity{
		OpportunityID:  uuid.New(),
		EntrepreneurID: entrepreneurID,
		Title:          "community farm expansion",
		Category:       "equity",
		Industry:       industry,
		Description:    "A proven and established operation.",
		FundingGoal:    decimal.NewFromInt(50_000),
		MinInvestment:  decimal.NewFromInt(5_000),
		ProjectedRoi:   20,
		FundingStage:   model.FundingStage_Growth,
	}
}

func Test_ScoreEntrepreneur(t *testing.T) {
	ctx := context.Background()
	entrepreneurID := uuid.New()

	t.Run("activity and notes feed the scorer", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return([]model.ProgressNote{
			{EntrepreneurID: entrepreneurID, Note: "completed the pilot successfully"},
		}, nil)

		score, err := svc.ScoreEntrepreneur(ctx, entrepreneurID)
		require.NoError(t, err)
		// 0.7*100 numerical + 0.3*70 text
		require.Equal(t, 91, score.Score)
	})

	t.Run("missing activity is an error", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		mocks.activity.EXPECT().Get(entrepreneurID).Return(nil, fmt.Errorf("no rows"))

		_, err := svc.ScoreEntrepreneur(ctx, entrepreneurID)
		require.Error(t, err)
	})

	t.Run("note lookup failure scores without notes", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return(nil, fmt.Errorf("timeout"))

		score, err := svc.ScoreEntrepreneur(ctx, entrepreneurID)
		require.NoError(t, err)
		require.Equal(t, 100, score.Score)
	})
}

func Test_AssessOpportunity(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the opportunity and its entrepreneur", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		entrepreneurID := uuid.New()
		opportunity := storedOpportunity(entrepreneurID, "agriculture")

		mocks.opportunity.EXPECT().Get(opportunity.OpportunityID).Return(&opportunity, nil)
		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return([]model.ProgressNote{}, nil)

		assessment, err := svc.AssessOpportunity(ctx, opportunity.OpportunityID)
		require.NoError(t, err)
		// text 0.4*35 + structural 0.6*0 with a reliability of 100
		require.Equal(t, 14, assessment.RiskScore)
	})

	t.Run("unknown opportunity is an error", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		opportunityID := uuid.New()
		mocks.opportunity.EXPECT().Get(opportunityID).Return(nil, fmt.Errorf("no rows"))

		_, err := svc.AssessOpportunity(ctx, opportunityID)
		require.Error(t, err)
	})
}

func Test_RecommendForInvestor(t *testing.T) {
	ctx := context.Background()
	investorID := uuid.New()

	storedProfile := func() *model.InvestorProfile {
		return &model.InvestorProfile{
			InvestorID:          investorID,
			PreferredIndustries: "agriculture, retail",
			InvestmentTypes:     "equity",
			MinInvestment:       decimal.NewFromInt(1_000),
			MaxInvestment:       decimal.NewFromInt(10_000),
			RiskTolerance:       model.RiskTolerance_Low,
		}
	}

	t.Run("scores every stored opportunity", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		entrepreneurID := uuid.New()
		opportunity := storedOpportunity(entrepreneurID, "agriculture")

		mocks.investorProfile.EXPECT().Get(investorID).Return(storedProfile(), nil)
		mocks.investment.EXPECT().ListByInvestor(investorID).Return([]model.Investment{}, nil)
		mocks.opportunity.EXPECT().List().Return([]model.Opportunity{opportunity}, nil)
		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return([]model.ProgressNote{}, nil)

		results, err := svc.RecommendForInvestor(ctx, investorID)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, opportunity.OpportunityID, results[0].OpportunityID)
		require.Equal(t, 100, results[0].MatchScore)
	})

	t.Run("already-funded opportunities are excluded", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		entrepreneurID := uuid.New()
		funded := storedOpportunity(entrepreneurID, "agriculture")
		fresh := storedOpportunity(entrepreneurID, "agriculture")

		mocks.investorProfile.EXPECT().Get(investorID).Return(storedProfile(), nil)
		mocks.investment.EXPECT().ListByInvestor(investorID).Return([]model.Investment{
			{InvestorID: investorID, OpportunityID: funded.OpportunityID},
		}, nil)
		mocks.opportunity.EXPECT().ListByIDs([]uuid.UUID{funded.OpportunityID}).
			Return([]model.Opportunity{funded}, nil)
		mocks.opportunity.EXPECT().List().Return([]model.Opportunity{funded, fresh}, nil)
		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return([]model.ProgressNote{}, nil)

		results, err := svc.RecommendForInvestor(ctx, investorID)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, fresh.OpportunityID, results[0].OpportunityID)
	})

	t.Run("investment history augments preferred industries", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		pastEntrepreneur := uuid.New()
		funded := storedOpportunity(pastEntrepreneur, "manufacturing")

		entrepreneurID := uuid.New()
		candidate := storedOpportunity(entrepreneurID, "manufacturing")

		mocks.investorProfile.EXPECT().Get(investorID).Return(storedProfile(), nil)
		mocks.investment.EXPECT().ListByInvestor(investorID).Return([]model.Investment{
			{InvestorID: investorID, OpportunityID: funded.OpportunityID},
		}, nil)
		mocks.opportunity.EXPECT().ListByIDs([]uuid.UUID{funded.OpportunityID}).
			Return([]model.Opportunity{funded}, nil)
		mocks.opportunity.EXPECT().List().Return([]model.Opportunity{candidate}, nil)
		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return([]model.ProgressNote{}, nil)

		results, err := svc.RecommendForInvestor(ctx, investorID)
		require.NoError(t, err)
		require.Len(t, results, 1)
		// manufacturing now counts as preferred: full 30 industry points
		require.Contains(t, results[0].MatchReasons, "operates in your preferred industry (manufacturing)")
	})

	t.Run("reliability lookups are memoized per entrepreneur", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		entrepreneurID := uuid.New()
		first := storedOpportunity(entrepreneurID, "agriculture")
		second := storedOpportunity(entrepreneurID, "retail")

		mocks.investorProfile.EXPECT().Get(investorID).Return(storedProfile(), nil)
		mocks.investment.EXPECT().ListByInvestor(investorID).Return([]model.Investment{}, nil)
		mocks.opportunity.EXPECT().List().Return([]model.Opportunity{first, second}, nil)
		// exactly one activity load despite two opportunities
		mocks.activity.EXPECT().Get(entrepreneurID).Return(reliableActivity(entrepreneurID), nil).Times(1)
		mocks.activity.EXPECT().ListNotes(entrepreneurID).Return([]model.ProgressNote{}, nil).Times(1)

		results, err := svc.RecommendForInvestor(ctx, investorID)
		require.NoError(t, err)
		require.Len(t, results, 2)
	})

	t.Run("activity failure falls back to neutral reliability", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		entrepreneurID := uuid.New()
		opportunity := storedOpportunity(entrepreneurID, "agriculture")

		mocks.investorProfile.EXPECT().Get(investorID).Return(storedProfile(), nil)
		mocks.investment.EXPECT().ListByInvestor(investorID).Return([]model.Investment{}, nil)
		mocks.opportunity.EXPECT().List().Return([]model.Opportunity{opportunity}, nil)
		mocks.activity.EXPECT().Get(entrepreneurID).Return(nil, fmt.Errorf("no rows"))

		results, err := svc.RecommendForInvestor(ctx, investorID)
		require.NoError(t, err)
		// neutral reliability keeps the opportunity scorable
		require.Len(t, results, 1)
	})

	t.Run("missing profile is an error", func(t *testing.T) {
		svc, mocks := newRecommendationService(t)

		mocks.investorProfile.EXPECT().Get(investorID).Return(nil, fmt.Errorf("no rows"))

		_, err := svc.RecommendForInvestor(ctx, investorID)
		require.Error(t, err)
	})
}
