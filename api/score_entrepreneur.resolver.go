package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScoreEntrepreneurRequest struct {
	EntrepreneurID string `json:"entrepreneurID" validate:"required,uuid4"`
}

type ScoreEntrepreneurResponse struct {
	Score           int      `json:"score"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Source          string   `json:"source"`
}

func (m ApiHandler) scoreEntrepreneur(c *gin.Context) {
	var requestBody ScoreEntrepreneurRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := validate.Struct(requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	entrepreneurID, err := uuid.Parse(requestBody.EntrepreneurID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse entrepreneur id: %w", err), c, 400)
		return
	}

	score, err := m.RecommendationService.ScoreEntrepreneur(c, entrepreneurID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to score entrepreneur: %w", err), c)
		return
	}

	c.JSON(200, ScoreEntrepreneurResponse{
		Score:           score.Score,
		Insights:        score.Insights,
		Recommendations: score.Recommendations,
		Source:          string(score.Source),
	})
}
