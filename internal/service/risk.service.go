package service

import (
	"context"
	"fmt"
	"fundmatch/internal/calculator"
	"fundmatch/internal/domain"
	"fundmatch/internal/logger"
	"fundmatch/internal/metrics"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	textRiskWeight       = 0.4
	structuralRiskWeight = 0.6

	textRiskBaseline       = 50.0
	structuralRiskBaseline = 30.0

	shortDescriptionChars = 200
)

// keyword tiers for the description scan. one factor per matched keyword.
var (
	highRiskKeywords   = []string{"revolutionary", "disruptive", "untested", "unproven", "first-ever", "moonshot"}
	mediumRiskKeywords = []string{"competitive", "complex", "challenging", "volatile", "experimental"}
	lowRiskKeywords    = []string{"proven", "established", "track-record", "recurring", "profitable"}
)

var (
	highVolatilityIndustries = []string{"technology", "biotech", "cryptocurrency", "gaming"}
	lowVolatilityIndustries  = []string{"agriculture", "retail", "services", "manufacturing"}
)

var (
	largeFundingGoal = decimal.NewFromInt(100_000)
	smallFundingGoal = decimal.NewFromInt(5_000)
)

// RiskAssessor scores an opportunity's execution/market risk on a 0-100
// scale, combining a description scan with structural attributes.
type RiskAssessor interface {
	Assess(ctx context.Context, opportunity domain.OpportunityFeatures) domain.RiskAssessment
}

type riskAssessorHandler struct{}

func NewRiskAssessor() RiskAssessor {
	return riskAssessorHandler{}
}

func (h riskAssessorHandler) Assess(ctx context.Context, opportunity domain.OpportunityFeatures) (result domain.RiskAssessment) {
	metrics.ScoringCallsTotal.WithLabelValues("risk").Inc()

	structural := structuralRisk(opportunity)

	// if the text scan blows up, fall back to the structural assessment alone
	defer func() {
		if r := recover(); r != nil {
			metrics.FallbacksTotal.WithLabelValues("risk").Inc()
			logger.FromContext(ctx).Errorf("text risk analysis panicked: %v", r)
			score := calculator.RoundScore(structural.score)
			result = domain.RiskAssessment{
				RiskScore:   score,
				RiskLevel:   domain.RiskLevelFromScore(score),
				RiskFactors: structural.factors,
				Suggestions: structural.suggestions,
				Source:      domain.AnalysisSource_Fallback,
			}
		}
	}()

	text := textRisk(opportunity.Description)

	combined := calculator.RoundScore(textRiskWeight*text.score + structuralRiskWeight*structural.score)

	return domain.RiskAssessment{
		RiskScore:   combined,
		RiskLevel:   domain.RiskLevelFromScore(combined),
		RiskFactors: append(text.factors, structural.factors...),
		Suggestions: append(text.suggestions, structural.suggestions...),
		Source:      domain.AnalysisSource_Heuristic,
	}
}

// mentionsKeyword matches on word boundaries so overlapping keywords across
// tiers ("proven" inside "unproven") count only for the tier they belong to.
// corpus must already be lowercased.
func mentionsKeyword(corpus, keyword string) bool {
	for start := 0; ; {
		idx := strings.Index(corpus[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)
		if (idx == 0 || !isWordChar(corpus[idx-1])) &&
			(end == len(corpus) || !isWordChar(corpus[end])) {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

type subAssessment struct {
	score       float64
	factors     []string
	suggestions []string
}

func textRisk(description string) subAssessment {
	out := subAssessment{
		score:       textRiskBaseline,
		factors:     []string{},
		suggestions: []string{},
	}

	corpus := strings.ToLower(description)

	for _, keyword := range highRiskKeywords {
		if mentionsKeyword(corpus, keyword) {
			out.score += 10
			out.factors = append(out.factors, fmt.Sprintf("high-risk signal: description mentions %q", keyword))
		}
	}
	for _, keyword := range mediumRiskKeywords {
		if mentionsKeyword(corpus, keyword) {
			out.score += 5
			out.factors = append(out.factors, fmt.Sprintf("medium-risk signal: description mentions %q", keyword))
		}
	}
	for _, keyword := range lowRiskKeywords {
		if mentionsKeyword(corpus, keyword) {
			out.score -= 10
			out.factors = append(out.factors, fmt.Sprintf("low-risk signal: description mentions %q", keyword))
		}
	}

	if len(description) < shortDescriptionChars {
		out.score += 5
		out.suggestions = append(out.suggestions, "elaborate on the opportunity description so investors can judge the plan")
	}

	if out.score > 70 {
		out.suggestions = append(out.suggestions,
			"conduct independent due diligence before committing capital",
			"release funding in stages tied to verifiable milestones",
		)
	}

	out.score = calculator.ClampScore(out.score)
	return out
}

func structuralRisk(opportunity domain.OpportunityFeatures) subAssessment {
	out := subAssessment{
		score:       structuralRiskBaseline,
		factors:     []string{},
		suggestions: []string{},
	}

	if opportunity.FundingGoal.GreaterThan(largeFundingGoal) {
		out.score += 20
		out.factors = append(out.factors, "large funding goal increases execution risk")
		out.suggestions = append(out.suggestions, "consider phased funding rounds instead of a single raise")
	} else if opportunity.FundingGoal.LessThan(smallFundingGoal) {
		out.score += 10
		out.factors = append(out.factors, "small funding goal may limit the venture's scope")
	}

	industry := strings.ToLower(opportunity.Industry)
	for _, volatile := range highVolatilityIndustries {
		if strings.Contains(industry, volatile) {
			out.score += 15
			out.factors = append(out.factors, fmt.Sprintf("%s is a high-volatility industry", volatile))
			break
		}
	}
	for _, steady := range lowVolatilityIndustries {
		if strings.Contains(industry, steady) {
			out.score -= 10
			out.factors = append(out.factors, fmt.Sprintf("%s is a historically stable industry", steady))
			break
		}
	}

	if opportunity.EntrepreneurReliabilityScore < 60 {
		out.score += 20
		out.factors = append(out.factors, "entrepreneur reliability score is below average")
		out.suggestions = append(out.suggestions, "monitor entrepreneur milestone delivery closely")
	} else if opportunity.EntrepreneurReliabilityScore > 80 {
		out.score -= 15
	}

	switch opportunity.FundingStage {
	case domain.FundingStage_Seed:
		out.score += 10
		out.factors = append(out.factors, "seed-stage ventures carry elevated risk")
	case domain.FundingStage_Growth:
		out.score -= 5
	}

	out.score = calculator.ClampScore(out.score)
	return out
}
