package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssessOpportunityRequest struct {
	OpportunityID string `json:"opportunityID" validate:"required,uuid4"`
}

type AssessOpportunityResponse struct {
	RiskScore   int      `json:"riskScore"`
	RiskLevel   string   `json:"riskLevel"`
	RiskFactors []string `json:"riskFactors"`
	Suggestions []string `json:"suggestions"`
	Source      string   `json:"source"`
}

func (m ApiHandler) assessOpportunity(c *gin.Context) {
	var requestBody AssessOpportunityRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := validate.Struct(requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	opportunityID, err := uuid.Parse(requestBody.OpportunityID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse opportunity id: %w", err), c, 400)
		return
	}

	assessment, err := m.RecommendationService.AssessOpportunity(c, opportunityID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to assess opportunity: %w", err), c)
		return
	}

	c.JSON(200, AssessOpportunityResponse{
		RiskScore:   assessment.RiskScore,
		RiskLevel:   string(assessment.RiskLevel),
		RiskFactors: assessment.RiskFactors,
		Suggestions: assessment.Suggestions,
		Source:      string(assessment.Source),
	})
}
