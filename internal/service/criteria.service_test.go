package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_EvaluateBonus(t *testing.T) {
	criteriaService := NewCriteriaService()

	t.Run("constant expression", func(t *testing.T) {
		bonus, err := criteriaService.EvaluateBonus("5", CriteriaVariables{})
		require.NoError(t, err)
		require.Equal(t, 5.0, bonus)
	})

	t.Run("variables are exposed", func(t *testing.T) {
		bonus, err := criteriaService.EvaluateBonus("riskScore / 10", CriteriaVariables{RiskScore: 80})
		require.NoError(t, err)
		require.Equal(t, 8.0, bonus)
	})

	t.Run("helper functions", func(t *testing.T) {
		bonus, err := criteriaService.EvaluateBonus(
			"clamp((reliabilityScore - riskScore) / 5, 0, 10)",
			CriteriaVariables{ReliabilityScore: 90, RiskScore: 40},
		)
		require.NoError(t, err)
		require.Equal(t, 10.0, bonus)

		bonus, err = criteriaService.EvaluateBonus(
			"max(projectedRoi - 15, 0)",
			CriteriaVariables{ProjectedRoi: 18},
		)
		require.NoError(t, err)
		require.Equal(t, 3.0, bonus)
	})

	t.Run("bonus is clamped to [0,10]", func(t *testing.T) {
		bonus, err := criteriaService.EvaluateBonus("999", CriteriaVariables{})
		require.NoError(t, err)
		require.Equal(t, 10.0, bonus)

		bonus, err = criteriaService.EvaluateBonus("0 - 50", CriteriaVariables{})
		require.NoError(t, err)
		require.Equal(t, 0.0, bonus)
	})

	t.Run("broken expressions error", func(t *testing.T) {
		_, err := criteriaService.EvaluateBonus("riskScore +", CriteriaVariables{})
		require.Error(t, err)

		_, err = criteriaService.EvaluateBonus(`"not a number"`, CriteriaVariables{})
		require.Error(t, err)
	})
}
