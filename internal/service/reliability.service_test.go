package service

import (
	"context"
	"fmt"
	"fundmatch/internal/domain"
	mock_repository "fundmatch/internal/repository/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Score(t *testing.T) {
	ctx := context.Background()
	scorer := NewReliabilityScorer(NewTextSignalAnalyzer(nil), nil)

	t.Run("perfect metrics without notes", func(t *testing.T) {
		result := scorer.Score(ctx, domain.ActivityMetrics{
			MilestoneUpdateFrequency: 7,
			ProfileCompleteness:      100,
			OverdueMilestones:        0,
			CommunicationFrequency:   3,
		})

		require.Equal(t, 100, result.Score)
		require.Contains(t, result.Insights, "excellent profile completeness")
		require.Equal(t, []string{"consider mentoring other entrepreneurs on the platform"}, result.Recommendations)
	})

	t.Run("text weight is dropped when no notes exist", func(t *testing.T) {
		result := scorer.Score(ctx, domain.ActivityMetrics{
			MilestoneUpdateFrequency: 3.5,
			ProfileCompleteness:      50,
			OverdueMilestones:        1,
			CommunicationFrequency:   1.5,
		})

		// 100 * (0.30*0.5 + 0.25*0.5 + 0.25*0.8 + 0.20*0.5) = 57.5
		// the 0.3 text weight must NOT be applied against a placeholder of 0
		require.Equal(t, 58, result.Score)
		require.Contains(t, result.Insights, "profile is missing sections investors look for")
		require.Contains(t, result.Recommendations, "address overdue milestones")
		require.Contains(t, result.Recommendations, "increase communication with your investors")
	})

	t.Run("positive notes blend at 0.7/0.3", func(t *testing.T) {
		result := scorer.Score(ctx, domain.ActivityMetrics{
			MilestoneUpdateFrequency: 7,
			ProfileCompleteness:      100,
			OverdueMilestones:        0,
			CommunicationFrequency:   3,
			ProgressNotes:            []string{"progress completed successful"},
		})

		// 0.7*100 + 0.3*70 = 91
		require.Equal(t, 91, result.Score)
	})

	t.Run("overdue boundary cases", func(t *testing.T) {
		atCap := scorer.Score(ctx, domain.ActivityMetrics{OverdueMilestones: 5})
		clean := scorer.Score(ctx, domain.ActivityMetrics{OverdueMilestones: 0})

		// overdue=5 zeroes the overdue component, overdue=0 maxes it
		require.Equal(t, clean.Score-atCap.Score, 25)
	})

	t.Run("score always within bounds", func(t *testing.T) {
		result := scorer.Score(ctx, domain.ActivityMetrics{
			MilestoneUpdateFrequency: 50,
			ProfileCompleteness:      100,
			OverdueMilestones:        0,
			CommunicationFrequency:   40,
		})
		require.LessOrEqual(t, result.Score, 100)
		require.GreaterOrEqual(t, result.Score, 0)
	})

	t.Run("idempotent", func(t *testing.T) {
		input := domain.ActivityMetrics{
			MilestoneUpdateFrequency: 4,
			ProfileCompleteness:      80,
			OverdueMilestones:        1,
			CommunicationFrequency:   2,
			ProgressNotes:            []string{"improved retention", "delayed hire"},
		}
		require.Equal(t, scorer.Score(ctx, input), scorer.Score(ctx, input))
	})
}

func Test_Score_Fallback(t *testing.T) {
	ctx := context.Background()
	// nil analyzer panics once notes force the text path - scoring must
	// degrade to numerical-only instead of propagating
	scorer := NewReliabilityScorer(nil, nil)

	result := scorer.Score(ctx, domain.ActivityMetrics{
		MilestoneUpdateFrequency: 7,
		ProfileCompleteness:      100,
		OverdueMilestones:        0,
		CommunicationFrequency:   3,
		ProgressNotes:            []string{"anything"},
	})

	require.Equal(t, 100, result.Score)
	require.Contains(t, result.Insights, "simplified analysis - scoring models unavailable")
	require.Equal(t, domain.AnalysisSource_Fallback, result.Source)
	require.NotEmpty(t, result.Recommendations)
}

func Test_Score_LlmEnrichment(t *testing.T) {
	ctx := context.Background()

	t.Run("llm insight is appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		notes := []string{"completed pilot with two retailers"}
		gptRepository.EXPECT().
			GenerateProgressInsight(ctx, notes).
			Return("pilot traction suggests steady execution", nil)

		scorer := NewReliabilityScorer(NewTextSignalAnalyzer(nil), gptRepository)
		result := scorer.Score(ctx, domain.ActivityMetrics{
			MilestoneUpdateFrequency: 5,
			ProfileCompleteness:      95,
			CommunicationFrequency:   2,
			ProgressNotes:            notes,
		})

		require.Contains(t, result.Insights, "pilot traction suggests steady execution")
	})

	t.Run("llm failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		notes := []string{"completed pilot"}
		gptRepository.EXPECT().
			GenerateProgressInsight(ctx, notes).
			Return("", fmt.Errorf("rate limited"))

		scorer := NewReliabilityScorer(NewTextSignalAnalyzer(nil), gptRepository)
		result := scorer.Score(ctx, domain.ActivityMetrics{
			MilestoneUpdateFrequency: 5,
			ProfileCompleteness:      95,
			CommunicationFrequency:   2,
			ProgressNotes:            notes,
		})

		require.NotEqual(t, domain.AnalysisSource_Fallback, result.Source)
		require.GreaterOrEqual(t, result.Score, 0)
	})
}
