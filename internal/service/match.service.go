package service

import (
	"context"
	"fmt"
	"fundmatch/internal/domain"
	"fundmatch/internal/logger"
	"fundmatch/internal/metrics"
	"fundmatch/pkg/benchmark"
	"math"
	"sort"
	"sync"
)

const (
	// matches at or below this score are excluded entirely, not down-ranked
	inclusionThreshold = 30
	maxRecommendations = 10

	// batches above this size are scored on a worker pool
	parallelThreshold = 8
	numMatchWorkers   = 10
)

// riskMatrix maps (investor tolerance, opportunity risk level) to match
// points.
var riskMatrix = map[domain.RiskTolerance]map[domain.RiskLevel]int{
	domain.RiskTolerance_Low: {
		domain.RiskLevel_Low:    20,
		domain.RiskLevel_Medium: 5,
		domain.RiskLevel_High:   0,
	},
	domain.RiskTolerance_Medium: {
		domain.RiskLevel_Low:    15,
		domain.RiskLevel_Medium: 20,
		domain.RiskLevel_High:   10,
	},
	domain.RiskTolerance_High: {
		domain.RiskLevel_Low:    10,
		domain.RiskLevel_Medium: 15,
		domain.RiskLevel_High:   20,
	},
}

// MatchEngine scores every (investor, opportunity) pair and returns a
// ranked, capped recommendation list.
type MatchEngine interface {
	Recommend(ctx context.Context, investor domain.InvestorProfile, opportunities []domain.OpportunityFeatures) []domain.MatchResult
}

type matchEngineHandler struct {
	RiskAssessor    RiskAssessor
	CriteriaService CriteriaService
	// optional - nil uses the default ROI hurdles
	BenchmarkClient benchmark.Client
}

func NewMatchEngine(riskAssessor RiskAssessor, criteriaService CriteriaService, benchmarkClient benchmark.Client) MatchEngine {
	return matchEngineHandler{
		RiskAssessor:    riskAssessor,
		CriteriaService: criteriaService,
		BenchmarkClient: benchmarkClient,
	}
}

func (h matchEngineHandler) Recommend(ctx context.Context, investor domain.InvestorProfile, opportunities []domain.OpportunityFeatures) (results []domain.MatchResult) {
	metrics.ScoringCallsTotal.WithLabelValues("match").Inc()

	// a malformed batch yields no recommendations, never an error to the
	// presentation layer
	defer func() {
		if r := recover(); r != nil {
			metrics.FallbacksTotal.WithLabelValues("match").Inc()
			logger.FromContext(ctx).Errorf("match batch panicked: %v", r)
			results = []domain.MatchResult{}
		}
	}()

	if investor.MinInvestment.GreaterThan(investor.MaxInvestment) {
		logger.FromContext(ctx).Warnf(
			"malformed investor profile %s: min investment exceeds max", investor.InvestorID)
		return []domain.MatchResult{}
	}

	scored := h.scoreAll(ctx, investor, opportunities)

	kept := []domain.MatchResult{}
	for _, result := range scored {
		if result != nil && result.MatchScore > inclusionThreshold {
			kept = append(kept, *result)
		}
	}

	// stable: ties keep original opportunity order
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MatchScore > kept[j].MatchScore
	})

	if len(kept) > maxRecommendations {
		kept = kept[:maxRecommendations]
	}

	for _, result := range kept {
		metrics.MatchScores.Observe(float64(result.MatchScore))
	}

	return kept
}

// scoreAll returns one slot per input opportunity, nil where scoring failed.
// Slots are indexed by input position so ordering stays deterministic
// regardless of worker scheduling.
func (h matchEngineHandler) scoreAll(ctx context.Context, investor domain.InvestorProfile, opportunities []domain.OpportunityFeatures) []*domain.MatchResult {
	results := make([]*domain.MatchResult, len(opportunities))

	if len(opportunities) <= parallelThreshold {
		for i, opportunity := range opportunities {
			results[i] = h.scoreOrSkip(ctx, investor, opportunity)
		}
		return results
	}

	type workInput struct {
		index       int
		opportunity domain.OpportunityFeatures
	}
	type workResult struct {
		index  int
		result *domain.MatchResult
	}

	inputCh := make(chan workInput, len(opportunities))
	resultCh := make(chan workResult, len(opportunities))
	var wg sync.WaitGroup
	for i, opportunity := range opportunities {
		wg.Add(1)
		inputCh <- workInput{index: i, opportunity: opportunity}
	}
	close(inputCh)

	for i := 0; i < numMatchWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// release queued work so wg.Wait always unwinds and the
					// caller can return
					for range inputCh {
						wg.Done()
					}
					return
				case input, ok := <-inputCh:
					if !ok {
						return
					}
					resultCh <- workResult{
						index:  input.index,
						result: h.scoreOrSkip(ctx, investor, input.opportunity),
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		results[res.index] = res.result
	}

	return results
}

func (h matchEngineHandler) scoreOrSkip(ctx context.Context, investor domain.InvestorProfile, opportunity domain.OpportunityFeatures) *domain.MatchResult {
	result, err := h.scoreOpportunity(ctx, investor, opportunity)
	if err != nil {
		metrics.MatchCandidatesSkippedTotal.Inc()
		logger.FromContext(ctx).Warnf(
			"skipping opportunity %s in match batch: %v", opportunity.OpportunityID, err)
		return nil
	}
	return result
}

func (h matchEngineHandler) scoreOpportunity(ctx context.Context, investor domain.InvestorProfile, opportunity domain.OpportunityFeatures) (result *domain.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("match computation panicked: %v", r)
		}
	}()

	score := 0
	reasons := []string{}

	// industry match
	if investor.PrefersIndustry(opportunity.Industry) {
		score += 30
		reasons = append(reasons, fmt.Sprintf("operates in your preferred industry (%s)", opportunity.Industry))
	} else {
		// diversity credit
		score += 5
		reasons = append(reasons, "adds diversification outside your preferred industries")
	}

	// investment-amount fit
	minInvestment := opportunity.MinInvestment
	if minInvestment.GreaterThanOrEqual(investor.MinInvestment) && minInvestment.LessThanOrEqual(investor.MaxInvestment) {
		score += 25
		reasons = append(reasons, "minimum investment fits your range")
	} else if minInvestment.LessThan(investor.MinInvestment) {
		score += 10
		reasons = append(reasons, "minimum investment is below your usual threshold")
	}

	// risk-tolerance fit
	assessment := h.RiskAssessor.Assess(ctx, opportunity)
	riskPoints := riskMatrix[investor.RiskTolerance][assessment.RiskLevel]
	score += riskPoints
	switch {
	case riskPoints >= 20:
		reasons = append(reasons, "risk profile is a perfect match for your tolerance")
	case riskPoints >= 10:
		reasons = append(reasons, "risk profile is acceptable for your tolerance")
	case riskPoints > 0:
		reasons = append(reasons, "risk sits slightly outside your comfort zone")
	}

	// investment-type match
	if investor.AcceptsCategory(opportunity.Category) {
		score += 15
		reasons = append(reasons, fmt.Sprintf("matches your preferred investment type (%s)", opportunity.Category))
	}

	// ROI attractiveness
	rates := benchmark.HurdleRates{High: benchmark.DefaultHighHurdle, Low: benchmark.DefaultLowHurdle}
	if h.BenchmarkClient != nil {
		rates = h.BenchmarkClient.HurdleRates()
	}
	if opportunity.ProjectedRoi > rates.High {
		score += 10
		reasons = append(reasons, fmt.Sprintf("projected ROI of %.1f%% beats the market hurdle", opportunity.ProjectedRoi))
	} else if opportunity.ProjectedRoi > rates.Low {
		score += 5
		reasons = append(reasons, "projected ROI is competitive")
	}

	// investor-authored bonus criteria
	if investor.CriteriaExpression != "" {
		bonus, evalErr := h.CriteriaService.EvaluateBonus(investor.CriteriaExpression, CriteriaVariables{
			RiskScore:        assessment.RiskScore,
			ReliabilityScore: opportunity.EntrepreneurReliabilityScore,
			FundingGoal:      opportunity.FundingGoal.InexactFloat64(),
			ProjectedRoi:     opportunity.ProjectedRoi,
		})
		if evalErr != nil {
			logger.FromContext(ctx).Warnf(
				"ignoring invalid criteria expression for investor %s: %v", investor.InvestorID, evalErr)
		} else if bonus > 0 {
			score += int(math.Round(bonus))
			reasons = append(reasons, "meets your custom criteria")
		}
	}

	if score > 100 {
		score = 100
	}

	return &domain.MatchResult{
		OpportunityID: opportunity.OpportunityID,
		MatchScore:    score,
		MatchReasons:  reasons,
	}, nil
}
