package service

import (
	"context"
	"fmt"
	"fundmatch/internal/domain"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestMatchEngine() MatchEngine {
	return NewMatchEngine(NewRiskAssessor(), NewCriteriaService(), nil)
}

func stableInvestor() domain.InvestorProfile {
	return domain.InvestorProfile{
		InvestorID:          uuid.New(),
		PreferredIndustries: []string{"agriculture"},
		MinInvestment:       decimal.NewFromInt(1_000),
		MaxInvestment:       decimal.NewFromInt(10_000),
		RiskTolerance:       domain.RiskTolerance_Low,
		InvestmentTypes:     []string{"equity"},
	}
}

// lowRiskOpportunity assesses LOW for a reliability score of 85:
// text 0.4*(50-20+5) + structural 0.6*(30-10-15-5) = 14
func lowRiskOpportunity() domain.OpportunityFeatures {
	return domain.OpportunityFeatures{
		OpportunityID:                uuid.New(),
		Category:                     "equity",
		Industry:                     "agriculture",
		FundingGoal:                  decimal.NewFromInt(50_000),
		MinInvestment:                decimal.NewFromInt(5_000),
		ProjectedRoi:                 20,
		Description:                  "A proven and established farm co-op.",
		EntrepreneurReliabilityScore: 85,
		FundingStage:                 domain.FundingStage_Growth,
	}
}

func highRiskOpportunity() domain.OpportunityFeatures {
	return domain.OpportunityFeatures{
		OpportunityID:                uuid.New(),
		Category:                     "convertible-note",
		Industry:                     "cryptocurrency",
		FundingGoal:                  decimal.NewFromInt(150_000),
		MinInvestment:                decimal.NewFromInt(50_000),
		ProjectedRoi:                 5,
		Description:                  "A revolutionary untested disruptive token.",
		EntrepreneurReliabilityScore: 40,
		FundingStage:                 domain.FundingStage_Seed,
	}
}

func Test_Recommend(t *testing.T) {
	ctx := context.Background()
	engine := newTestMatchEngine()

	t.Run("full-credit opportunity caps at 100", func(t *testing.T) {
		// industry 30 + amount 25 + risk 20 + type 15 + ROI 10
		results := engine.Recommend(ctx, stableInvestor(), []domain.OpportunityFeatures{lowRiskOpportunity()})

		require.Len(t, results, 1)
		require.Equal(t, 100, results[0].MatchScore)
		require.Contains(t, results[0].MatchReasons, "operates in your preferred industry (agriculture)")
		require.Contains(t, results[0].MatchReasons, "minimum investment fits your range")
		require.Contains(t, results[0].MatchReasons, "risk profile is a perfect match for your tolerance")
		require.Contains(t, results[0].MatchReasons, "matches your preferred investment type (equity)")
	})

	t.Run("low tolerance vs high risk falls below threshold", func(t *testing.T) {
		// diversity 5 + amount 0 + risk 0 + type 0 + ROI 0 = 5
		results := engine.Recommend(ctx, stableInvestor(), []domain.OpportunityFeatures{highRiskOpportunity()})
		require.Empty(t, results)
	})

	t.Run("results are filtered, sorted and capped", func(t *testing.T) {
		opportunities := []domain.OpportunityFeatures{highRiskOpportunity()}
		for i := 0; i < 14; i++ {
			opportunity := lowRiskOpportunity()
			if i%2 == 0 {
				// non-preferred industry drops this tier to 75
				opportunity.Industry = "hospitality"
			}
			opportunities = append(opportunities, opportunity)
		}

		results := engine.Recommend(ctx, stableInvestor(), opportunities)

		require.Len(t, results, 10)
		for i, result := range results {
			require.Greater(t, result.MatchScore, 30)
			if i > 0 {
				require.LessOrEqual(t, result.MatchScore, results[i-1].MatchScore)
			}
		}
	})

	t.Run("ties preserve input order", func(t *testing.T) {
		first := lowRiskOpportunity()
		second := lowRiskOpportunity()
		third := lowRiskOpportunity()

		results := engine.Recommend(ctx, stableInvestor(), []domain.OpportunityFeatures{first, second, third})

		require.Len(t, results, 3)
		require.Equal(t, first.OpportunityID, results[0].OpportunityID)
		require.Equal(t, second.OpportunityID, results[1].OpportunityID)
		require.Equal(t, third.OpportunityID, results[2].OpportunityID)
	})

	t.Run("large batches score on the worker pool deterministically", func(t *testing.T) {
		opportunities := []domain.OpportunityFeatures{}
		for i := 0; i < 30; i++ {
			opportunity := lowRiskOpportunity()
			opportunity.ProjectedRoi = float64(i)
			opportunities = append(opportunities, opportunity)
		}
		require.Greater(t, len(opportunities), parallelThreshold)

		first := engine.Recommend(ctx, stableInvestor(), opportunities)
		second := engine.Recommend(ctx, stableInvestor(), opportunities)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("recommendations differ between runs: %s", diff)
		}
		require.Len(t, first, 10)
	})

	t.Run("malformed investor profile yields empty list", func(t *testing.T) {
		investor := stableInvestor()
		investor.MinInvestment = decimal.NewFromInt(50_000)
		investor.MaxInvestment = decimal.NewFromInt(1_000)

		results := engine.Recommend(ctx, investor, []domain.OpportunityFeatures{lowRiskOpportunity()})
		require.Empty(t, results)
	})

	t.Run("custom criteria bonus is added before the cap", func(t *testing.T) {
		investor := stableInvestor()
		investor.CriteriaExpression = "min(projectedRoi / 4, 10)"

		opportunity := lowRiskOpportunity()
		opportunity.Category = "debt" // drop type points so the bonus is visible

		results := engine.Recommend(ctx, investor, []domain.OpportunityFeatures{opportunity})

		// 30 + 25 + 20 + 0 + 10 = 85, plus bonus min(20/4,10)=5
		require.Len(t, results, 1)
		require.Equal(t, 90, results[0].MatchScore)
		require.Contains(t, results[0].MatchReasons, "meets your custom criteria")
	})

	t.Run("invalid criteria expression contributes nothing", func(t *testing.T) {
		investor := stableInvestor()
		investor.CriteriaExpression = "projectedRoi +"

		results := engine.Recommend(ctx, investor, []domain.OpportunityFeatures{lowRiskOpportunity()})
		require.Len(t, results, 1)
		require.Equal(t, 100, results[0].MatchScore)
	})
}

// panickyRiskAssessor blows up for one opportunity to simulate a bad record
// inside a batch.
type panickyRiskAssessor struct {
	panicOn uuid.UUID
	inner   RiskAssessor
}

func (p panickyRiskAssessor) Assess(ctx context.Context, opportunity domain.OpportunityFeatures) domain.RiskAssessment {
	if opportunity.OpportunityID == p.panicOn {
		panic(fmt.Sprintf("bad record %s", opportunity.OpportunityID))
	}
	return p.inner.Assess(ctx, opportunity)
}

func Test_Recommend_CancelledContext(t *testing.T) {
	engine := newTestMatchEngine()

	opportunities := []domain.OpportunityFeatures{}
	for i := 0; i < 30; i++ {
		opportunities = append(opportunities, lowRiskOpportunity())
	}
	require.Greater(t, len(opportunities), parallelThreshold)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a cancelled context must never hang the batch - the caller just
	// discards whatever comes back
	done := make(chan []domain.MatchResult, 1)
	go func() {
		done <- engine.Recommend(ctx, stableInvestor(), opportunities)
	}()

	select {
	case results := <-done:
		require.LessOrEqual(t, len(results), maxRecommendations)
	case <-time.After(3 * time.Second):
		t.Fatal("Recommend did not return after context cancellation")
	}
}

func Test_Recommend_PartialBatchFailure(t *testing.T) {
	ctx := context.Background()

	good := lowRiskOpportunity()
	bad := lowRiskOpportunity()

	engine := NewMatchEngine(
		panickyRiskAssessor{panicOn: bad.OpportunityID, inner: NewRiskAssessor()},
		NewCriteriaService(),
		nil,
	)

	results := engine.Recommend(ctx, stableInvestor(), []domain.OpportunityFeatures{bad, good})

	// the failing opportunity is skipped, not fatal
	require.Len(t, results, 1)
	require.Equal(t, good.OpportunityID, results[0].OpportunityID)
}

func Test_Recommend_ScenarioScores(t *testing.T) {
	ctx := context.Background()
	engine := newTestMatchEngine()

	// medium-tier opportunity: diversity 5 + below-threshold 10 + risk 20 +
	// type 15 + partial ROI 5 = 55
	opportunity := lowRiskOpportunity()
	opportunity.Industry = "hospitality"
	opportunity.MinInvestment = decimal.NewFromInt(500)
	opportunity.ProjectedRoi = 10

	results := engine.Recommend(ctx, stableInvestor(), []domain.OpportunityFeatures{opportunity})
	require.Len(t, results, 1)
	require.Equal(t, 55, results[0].MatchScore)
	require.Contains(t, results[0].MatchReasons, "minimum investment is below your usual threshold")
	require.Contains(t, results[0].MatchReasons, "projected ROI is competitive")
	require.NotContains(t, strings.Join(results[0].MatchReasons, "|"), "preferred industry")
}
