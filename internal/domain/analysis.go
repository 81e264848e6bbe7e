package domain

// AnalysisSource records which path produced a result, so callers can tell
// "model used" apart from "heuristic used" and from "we fell back after a
// failure" without inspecting insight strings.
type AnalysisSource string

const (
	AnalysisSource_Model     AnalysisSource = "MODEL"
	AnalysisSource_Heuristic AnalysisSource = "HEURISTIC"
	AnalysisSource_Fallback  AnalysisSource = "FALLBACK"
)

type TextSignal struct {
	Score     float64
	Insights  []string
	Embedding []float64
	Source    AnalysisSource
}

func NeutralTextSignal() TextSignal {
	return TextSignal{
		Score:    50,
		Insights: []string{},
		Source:   AnalysisSource_Heuristic,
	}
}
