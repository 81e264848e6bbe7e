package service

import (
	"context"
	"fundmatch/internal/domain"
	"fundmatch/internal/embedding"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Analyze(t *testing.T) {
	ctx := context.Background()
	analyzer := NewTextSignalAnalyzer(nil)

	t.Run("empty input returns neutral baseline", func(t *testing.T) {
		signal := analyzer.Analyze(ctx, nil)
		require.Equal(t, 50.0, signal.Score)
		require.Empty(t, signal.Insights)
		require.Equal(t, domain.AnalysisSource_Heuristic, signal.Source)
	})

	t.Run("positive corpus", func(t *testing.T) {
		signal := analyzer.Analyze(ctx, []string{
			"made great progress this week",
			"completed the beta milestone",
		})
		// 2 positive hits, 0 negative: ratio 1 -> 30 + 40
		require.Equal(t, 70.0, signal.Score)
		require.Contains(t, signal.Insights, "progress notes show predominantly positive sentiment")
		// fewer than 3 updates
		require.Contains(t, signal.Insights, "insufficient updates to assess momentum - encourage more frequent reporting")
	})

	t.Run("negative corpus", func(t *testing.T) {
		signal := analyzer.Analyze(ctx, []string{
			"launch delayed again",
			"hit a supplier problem",
			"still behind on hiring",
		})
		require.Equal(t, 30.0, signal.Score)
		require.Contains(t, signal.Insights, "recent activity indicates challenges that may need attention")
		require.NotContains(t, signal.Insights, "insufficient updates to assess momentum - encourage more frequent reporting")
	})

	t.Run("keywords count once regardless of repetition", func(t *testing.T) {
		signal := analyzer.Analyze(ctx, []string{"progress progress progress", "delayed"})
		// 1 positive, 1 negative: ratio 0.5 -> 50
		require.Equal(t, 50.0, signal.Score)
	})

	t.Run("no keyword hits stays neutral", func(t *testing.T) {
		signal := analyzer.Analyze(ctx, []string{"weekly report attached"})
		require.Equal(t, 50.0, signal.Score)
	})

	t.Run("idempotent", func(t *testing.T) {
		texts := []string{"completed milestone", "delayed launch"}
		first := analyzer.Analyze(ctx, texts)
		second := analyzer.Analyze(ctx, texts)
		require.Equal(t, first, second)
	})
}

func Test_Analyze_DegradedModel(t *testing.T) {
	ctx := context.Background()
	// a model with no weights configured never becomes ready
	analyzer := NewTextSignalAnalyzer(embedding.NewModel(""))

	signal := analyzer.Analyze(ctx, []string{"excellent quarter, improved margins"})

	// embedding failure must not affect the heuristic score
	require.Equal(t, 70.0, signal.Score)
	require.Nil(t, signal.Embedding)
	require.Equal(t, domain.AnalysisSource_Heuristic, signal.Source)
}
