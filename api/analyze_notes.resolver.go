package api

import (
	"github.com/gin-gonic/gin"
)

type AnalyzeNotesRequest struct {
	Texts []string `json:"texts" validate:"required"`
}

type AnalyzeNotesResponse struct {
	Score    float64  `json:"score"`
	Insights []string `json:"insights"`
	Source   string   `json:"source"`
}

// analyzeNotes exposes the raw text-signal engine, mostly for tuning and
// support tooling.
func (m ApiHandler) analyzeNotes(c *gin.Context) {
	var requestBody AnalyzeNotesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := validate.Struct(requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	signal := m.TextSignalAnalyzer.Analyze(c, requestBody.Texts)

	c.JSON(200, AnalyzeNotesResponse{
		Score:    signal.Score,
		Insights: signal.Insights,
		Source:   string(signal.Source),
	})
}
