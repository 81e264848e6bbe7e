package service

import (
	"context"
	"fundmatch/internal/calculator"
	"fundmatch/internal/domain"
	"fundmatch/internal/logger"
	"fundmatch/internal/metrics"
	"fundmatch/internal/repository"
)

// Weights for the numerical sub-score. The text signal gets blended in at
// 0.7/0.3 only when progress notes exist - scoring a missing note history
// as 0 would unfairly penalize entrepreneurs who simply haven't written any.
const (
	updateFrequencyWeight     = 0.30
	profileCompletenessWeight = 0.25
	overdueWeight             = 0.25
	communicationWeight       = 0.20

	numericalBlendWeight = 0.7
	textBlendWeight      = 0.3

	// a week of daily updates maxes the frequency component
	updateFrequencyCap = 7
	overdueCap         = 5
	communicationCap   = 3
)

type ReliabilityScorer interface {
	Score(ctx context.Context, activityMetrics domain.ActivityMetrics) domain.ReliabilityScore
}

type reliabilityScorerHandler struct {
	TextSignalAnalyzer TextSignalAnalyzer
	// optional - nil disables LLM insight enrichment
	GptRepository repository.GptRepository
}

func NewReliabilityScorer(textSignalAnalyzer TextSignalAnalyzer, gptRepository repository.GptRepository) ReliabilityScorer {
	return reliabilityScorerHandler{
		TextSignalAnalyzer: textSignalAnalyzer,
		GptRepository:      gptRepository,
	}
}

func (h reliabilityScorerHandler) Score(ctx context.Context, activityMetrics domain.ActivityMetrics) (result domain.ReliabilityScore) {
	metrics.ScoringCallsTotal.WithLabelValues("reliability").Inc()

	numericalScore := numericalReliabilityScore(activityMetrics)

	// the numerical sub-score never fails; anything beyond it is allowed to
	// degrade to numerical-only
	defer func() {
		if r := recover(); r != nil {
			metrics.FallbacksTotal.WithLabelValues("reliability").Inc()
			logger.FromContext(ctx).Errorf("reliability scoring panicked: %v", r)
			result = domain.ReliabilityScore{
				Score:    calculator.RoundScore(numericalScore),
				Insights: []string{"simplified analysis - scoring models unavailable"},
				Recommendations: []string{
					"keep your profile and milestones up to date",
					"communicate regularly with your investors",
				},
				Source: domain.AnalysisSource_Fallback,
			}
		}
	}()

	finalScore := numericalScore
	source := domain.AnalysisSource_Heuristic
	textInsights := []string{}

	if activityMetrics.HasProgressNotes() {
		signal := h.TextSignalAnalyzer.Analyze(ctx, activityMetrics.ProgressNotes)
		finalScore = numericalBlendWeight*numericalScore + textBlendWeight*signal.Score
		source = signal.Source
		textInsights = signal.Insights
	}

	score := calculator.RoundScore(finalScore)

	insights := append(metricInsights(activityMetrics), textInsights...)
	insights = h.enrichInsights(ctx, activityMetrics, insights)

	return domain.ReliabilityScore{
		Score:           score,
		Insights:        insights,
		Recommendations: recommendations(score, activityMetrics),
		Source:          source,
	}
}

func numericalReliabilityScore(m domain.ActivityMetrics) float64 {
	normFreq := calculator.Normalize(m.MilestoneUpdateFrequency, updateFrequencyCap)
	normComplete := m.ProfileCompleteness / 100
	normOverdue := calculator.InverseNormalize(float64(m.OverdueMilestones), overdueCap)
	normComm := calculator.Normalize(m.CommunicationFrequency, communicationCap)

	return 100 * (updateFrequencyWeight*normFreq +
		profileCompletenessWeight*normComplete +
		overdueWeight*normOverdue +
		communicationWeight*normComm)
}

func metricInsights(m domain.ActivityMetrics) []string {
	insights := []string{}

	if m.ProfileCompleteness >= 90 {
		insights = append(insights, "excellent profile completeness")
	} else if m.ProfileCompleteness < 70 {
		insights = append(insights, "profile is missing sections investors look for")
	}

	if m.MilestoneUpdateFrequency >= 5 {
		insights = append(insights, "frequent milestone updates show strong engagement")
	} else if m.MilestoneUpdateFrequency < 2 {
		insights = append(insights, "milestone updates are infrequent")
	}

	if m.OverdueMilestones == 0 {
		insights = append(insights, "no overdue milestones")
	} else if m.OverdueMilestones > 2 {
		insights = append(insights, "multiple overdue milestones raise execution concerns")
	}

	return insights
}

func recommendations(score int, m domain.ActivityMetrics) []string {
	recs := []string{}

	if score < 60 {
		recs = append(recs,
			"complete your profile to build investor trust",
			"post milestone updates more often",
		)
	}
	if m.OverdueMilestones > 0 {
		recs = append(recs,
			"address overdue milestones",
			"set realistic timelines for upcoming milestones",
		)
	}
	if m.CommunicationFrequency < 2 {
		recs = append(recs, "increase communication with your investors")
	}
	if score >= 80 {
		recs = append(recs, "consider mentoring other entrepreneurs on the platform")
	}

	return recs
}

func (h reliabilityScorerHandler) enrichInsights(ctx context.Context, m domain.ActivityMetrics, insights []string) []string {
	if h.GptRepository == nil || !m.HasProgressNotes() {
		return insights
	}

	insight, err := h.GptRepository.GenerateProgressInsight(ctx, m.ProgressNotes)
	if err != nil {
		logger.FromContext(ctx).Debugf("skipping llm insight: %v", err)
		return insights
	}
	if insight != "" {
		insights = append(insights, insight)
	}

	return insights
}
