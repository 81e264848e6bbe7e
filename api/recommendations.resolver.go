package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecommendationsRequest struct {
	InvestorID string `json:"investorID" validate:"required,uuid4"`
}

type RecommendationsResponse struct {
	Recommendations []MatchResult `json:"recommendations"`
}

type MatchResult struct {
	OpportunityID string   `json:"opportunityID"`
	MatchScore    int      `json:"matchScore"`
	MatchReasons  []string `json:"matchReasons"`
}

func (m ApiHandler) recommendations(c *gin.Context) {
	var requestBody RecommendationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := validate.Struct(requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	investorID, err := uuid.Parse(requestBody.InvestorID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse investor id: %w", err), c, 400)
		return
	}

	results, err := m.RecommendationService.RecommendForInvestor(c, investorID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute recommendations: %w", err), c)
		return
	}

	out := []MatchResult{}
	for _, result := range results {
		out = append(out, MatchResult{
			OpportunityID: result.OpportunityID.String(),
			MatchScore:    result.MatchScore,
			MatchReasons:  result.MatchReasons,
		})
	}

	c.JSON(200, RecommendationsResponse{Recommendations: out})
}
