package cmd

import (
	"database/sql"
	"fmt"
	"fundmatch/api"
	"fundmatch/internal"
	"fundmatch/internal/embedding"
	"fundmatch/internal/logger"
	"fundmatch/internal/repository"
	"fundmatch/internal/service"
	"fundmatch/pkg/benchmark"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.EmbeddingModel != nil {
		handler.EmbeddingModel.Close()
	}
	if handler.Db != nil {
		if err := handler.Db.Close(); err != nil {
			log.Fatalf("failed to close db: %v", err)
		}
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	// missing .env is fine - secrets files carry everything in deployed envs
	_ = godotenv.Load()

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	// llm enrichment is optional - scoring works without it
	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("no gpt api key configured, skipping llm enrichment")
	}

	var benchmarkClient benchmark.Client
	if secrets.BenchmarkSymbol != "" {
		benchmarkClient = benchmark.NewClient(secrets.BenchmarkSymbol)
	}

	opportunityRepository := repository.NewOpportunityRepository(dbConn)
	investorProfileRepository := repository.NewInvestorProfileRepository(dbConn)
	activityRepository := repository.NewEntrepreneurActivityRepository(dbConn)
	investmentRepository := repository.NewInvestmentRepository(dbConn)

	embeddingModel := embedding.NewModel(secrets.ModelWeightsPath)
	textSignalAnalyzer := service.NewTextSignalAnalyzer(embeddingModel)
	reliabilityScorer := service.NewReliabilityScorer(textSignalAnalyzer, gptRepository)
	riskAssessor := service.NewRiskAssessor()
	matchEngine := service.NewMatchEngine(riskAssessor, service.NewCriteriaService(), benchmarkClient)

	recommendationService := service.NewRecommendationService(
		opportunityRepository,
		investorProfileRepository,
		activityRepository,
		investmentRepository,
		reliabilityScorer,
		riskAssessor,
		matchEngine,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		RecommendationService: recommendationService,
		TextSignalAnalyzer:    textSignalAnalyzer,
		EmbeddingModel:        embeddingModel,
		ApiRequestRepository:  repository.NewApiRequestRepository(),
		JwtSigningKey:         secrets.JwtSigningKey,
	}

	return apiHandler, nil
}
