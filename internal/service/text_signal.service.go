package service

import (
	"context"
	"fundmatch/internal/domain"
	"fundmatch/internal/embedding"
	"fundmatch/internal/logger"
	"fundmatch/internal/metrics"
	"strings"
)

// positive/negative markers are matched case-insensitively against the whole
// corpus; each keyword counts at most once no matter how often it appears.
var (
	positiveKeywords = []string{"progress", "completed", "successful", "achieved", "improved", "excellent"}
	negativeKeywords = []string{"delayed", "problem", "issue", "failed", "difficult", "behind"}
)

const textAnalysisUnavailableInsight = "text analysis unavailable"

// TextSignalAnalyzer converts free-text progress reports into a bounded
// sentiment score plus qualitative insights. The keyword heuristic is
// authoritative; the embedding model only annotates the result and its
// failure never changes the returned score.
type TextSignalAnalyzer interface {
	Analyze(ctx context.Context, texts []string) domain.TextSignal
}

type textSignalAnalyzerHandler struct {
	Model embedding.Model
}

func NewTextSignalAnalyzer(model embedding.Model) TextSignalAnalyzer {
	return textSignalAnalyzerHandler{
		Model: model,
	}
}

func (h textSignalAnalyzerHandler) Analyze(ctx context.Context, texts []string) (signal domain.TextSignal) {
	metrics.ScoringCallsTotal.WithLabelValues("text_signal").Inc()

	// Analyze never raises. Anything unexpected degrades to the documented
	// neutral fallback.
	defer func() {
		if r := recover(); r != nil {
			metrics.FallbacksTotal.WithLabelValues("text_signal").Inc()
			logger.FromContext(ctx).Errorf("text signal analysis panicked: %v", r)
			signal = domain.TextSignal{
				Score:    50,
				Insights: []string{textAnalysisUnavailableInsight},
				Source:   domain.AnalysisSource_Fallback,
			}
		}
	}()

	if len(texts) == 0 {
		return domain.NeutralTextSignal()
	}

	corpus := strings.ToLower(strings.Join(texts, " "))

	positiveCount := countKeywordHits(corpus, positiveKeywords)
	negativeCount := countKeywordHits(corpus, negativeKeywords)

	score := 50.0
	if positiveCount+negativeCount > 0 {
		positiveRatio := float64(positiveCount) / float64(positiveCount+negativeCount)
		score = 30 + positiveRatio*40
	}

	insights := []string{}
	if positiveCount > negativeCount {
		insights = append(insights, "progress notes show predominantly positive sentiment")
	} else if negativeCount > positiveCount {
		insights = append(insights, "recent activity indicates challenges that may need attention")
	}
	if len(texts) < 3 {
		insights = append(insights, "insufficient updates to assess momentum - encourage more frequent reporting")
	}

	signal = domain.TextSignal{
		Score:    score,
		Insights: insights,
		Source:   domain.AnalysisSource_Heuristic,
	}

	h.attachEmbedding(ctx, texts, &signal)

	return signal
}

// attachEmbedding annotates the signal with the model's view of the corpus.
// Strictly best-effort: the heuristic score above is never modified.
func (h textSignalAnalyzerHandler) attachEmbedding(ctx context.Context, texts []string, signal *domain.TextSignal) {
	if h.Model == nil {
		return
	}

	vector, err := h.Model.Embed(texts)
	if err != nil {
		logger.FromContext(ctx).Debugf("embedding unavailable, keeping keyword heuristic: %v", err)
		return
	}
	signal.Embedding = vector
	signal.Source = domain.AnalysisSource_Model

	modelScore, err := h.Model.Sentiment(vector)
	if err == nil && abs(modelScore-signal.Score) > 25 {
		logger.FromContext(ctx).Infof(
			"model sentiment %0.f diverges from keyword score %0.f", modelScore, signal.Score)
	}
}

func countKeywordHits(corpus string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(corpus, keyword) {
			hits++
		}
	}
	return hits
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
