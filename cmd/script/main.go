package main

import (
	"context"
	"fmt"
	"fundmatch/api"
	"fundmatch/cmd"
	"fundmatch/internal"
	"fundmatch/internal/calculator"
	"log"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fundmatch",
	Short: "operational scripts for the scoring engine",
}

var scoreCmd = &cobra.Command{
	Use:   "score [entrepreneurID]",
	Short: "compute a reliability score for one entrepreneur",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		entrepreneurID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("could not parse entrepreneur id: %w", err)
		}

		score, err := handler.RecommendationService.ScoreEntrepreneur(context.Background(), entrepreneurID)
		if err != nil {
			return err
		}
		internal.Pprint(score)

		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [investorID]",
	Short: "print ranked recommendations for one investor",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		investorID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("could not parse investor id: %w", err)
		}

		results, err := handler.RecommendationService.RecommendForInvestor(context.Background(), investorID)
		if err != nil {
			return err
		}
		internal.Pprint(results)

		return nil
	},
}

type batchAssessInput struct {
	OpportunityID string `csv:"opportunity_id"`
}

type batchAssessOutput struct {
	OpportunityID string `csv:"opportunity_id"`
	RiskScore     int    `csv:"risk_score"`
	RiskLevel     string `csv:"risk_level"`
	RiskFactors   string `csv:"risk_factors"`
}

var (
	batchAssessIn  string
	batchAssessOut string
)

var batchAssessCmd = &cobra.Command{
	Use:   "batch-assess",
	Short: "assess risk for a csv of opportunity ids",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		return batchAssess(handler, batchAssessIn, batchAssessOut)
	},
}

func batchAssess(handler *api.ApiHandler, inPath, outPath string) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open input csv: %w", err)
	}
	defer inFile.Close()

	rows := []batchAssessInput{}
	if err := gocsv.UnmarshalFile(inFile, &rows); err != nil {
		return fmt.Errorf("failed to parse input csv: %w", err)
	}

	ctx := context.Background()
	out := []batchAssessOutput{}
	scores := []int{}
	for _, row := range rows {
		opportunityID, err := uuid.Parse(row.OpportunityID)
		if err != nil {
			log.Printf("skipping unparseable opportunity id %q: %v", row.OpportunityID, err)
			continue
		}

		assessment, err := handler.RecommendationService.AssessOpportunity(ctx, opportunityID)
		if err != nil {
			log.Printf("skipping opportunity %s: %v", opportunityID, err)
			continue
		}

		out = append(out, batchAssessOutput{
			OpportunityID: row.OpportunityID,
			RiskScore:     assessment.RiskScore,
			RiskLevel:     string(assessment.RiskLevel),
			RiskFactors:   strings.Join(assessment.RiskFactors, "; "),
		})
		scores = append(scores, assessment.RiskScore)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output csv: %w", err)
	}
	defer outFile.Close()

	if err := gocsv.MarshalFile(&out, outFile); err != nil {
		return fmt.Errorf("failed to write output csv: %w", err)
	}

	if summary, err := calculator.SummarizeScores(scores); err == nil {
		internal.Pprint(summary)
	}

	return nil
}

func main() {
	batchAssessCmd.Flags().StringVar(&batchAssessIn, "in", "opportunities.csv", "input csv of opportunity ids")
	batchAssessCmd.Flags().StringVar(&batchAssessOut, "out", "assessments.csv", "output csv of risk assessments")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(batchAssessCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
