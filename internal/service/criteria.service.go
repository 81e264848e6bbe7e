package service

import (
	"fmt"
	"math"

	"github.com/maja42/goval"
)

// maximum bonus a custom criteria expression can grant on top of the
// weighted match criteria
const maxCriteriaBonus = 10.0

// CriteriaVariables are the values an investor's custom expression may
// reference.
type CriteriaVariables struct {
	RiskScore        int
	ReliabilityScore float64
	FundingGoal      float64
	ProjectedRoi     float64
}

// CriteriaService evaluates investor-authored match expressions, e.g.
// "clamp((reliabilityScore - riskScore) / 5, 0, 10)". The result is a bonus
// in [0,10]; a broken expression is worth 0, never an aborted match.
type CriteriaService interface {
	EvaluateBonus(expression string, vars CriteriaVariables) (float64, error)
}

type criteriaServiceHandler struct{}

func NewCriteriaService() CriteriaService {
	return criteriaServiceHandler{}
}

func (h criteriaServiceHandler) EvaluateBonus(expression string, vars CriteriaVariables) (float64, error) {
	eval := goval.NewEvaluator()

	variables := map[string]interface{}{
		"riskScore":        float64(vars.RiskScore),
		"reliabilityScore": vars.ReliabilityScore,
		"fundingGoal":      vars.FundingGoal,
		"projectedRoi":     vars.ProjectedRoi,
	}

	functions := map[string]goval.ExpressionFunction{
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("min needs 2 args, got %d", len(args))
			}
			a, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			b, err := toFloat(args[1])
			if err != nil {
				return 0, err
			}
			return math.Min(a, b), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("max needs 2 args, got %d", len(args))
			}
			a, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			b, err := toFloat(args[1])
			if err != nil {
				return 0, err
			}
			return math.Max(a, b), nil
		},
		"clamp": func(args ...interface{}) (interface{}, error) {
			if len(args) < 3 {
				return 0, fmt.Errorf("clamp needs 3 args, got %d", len(args))
			}
			v, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			lo, err := toFloat(args[1])
			if err != nil {
				return 0, err
			}
			hi, err := toFloat(args[2])
			if err != nil {
				return 0, err
			}
			return math.Max(lo, math.Min(hi, v)), nil
		},
	}

	result, err := eval.Evaluate(expression, variables, functions)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate criteria expression: %w", err)
	}

	bonus, err := toFloat(result)
	if err != nil {
		return 0, fmt.Errorf("criteria expression returned non-numeric result: %w", err)
	}

	return math.Max(0, math.Min(maxCriteriaBonus, bonus)), nil
}

func toFloat(v interface{}) (float64, error) {
	switch value := v.(type) {
	case int:
		return float64(value), nil
	case float64:
		return value, nil
	default:
		return 0, fmt.Errorf("expected numeric value, got %T", v)
	}
}
