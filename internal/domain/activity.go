package domain

// ActivityMetrics is an immutable snapshot of an entrepreneur's recent
// project-management activity. It has no persisted identity inside the
// engine - callers assemble one per scoring call.
type ActivityMetrics struct {
	// updates per week
	MilestoneUpdateFrequency float64
	// percent, 0-100
	ProfileCompleteness float64
	OverdueMilestones   int
	// contacts per week
	CommunicationFrequency float64
	ProgressNotes          []string
}

func (m ActivityMetrics) HasProgressNotes() bool {
	return len(m.ProgressNotes) > 0
}

type ReliabilityScore struct {
	Score           int
	Insights        []string
	Recommendations []string
	Source          AnalysisSource
}
