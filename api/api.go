package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"fundmatch/internal/db/models/postgres/public/model"
	"fundmatch/internal/embedding"
	"fundmatch/internal/logger"
	"fundmatch/internal/metrics"
	"fundmatch/internal/repository"
	"fundmatch/internal/service"
	"io"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ApiHandler struct {
	Db                    *sql.DB
	RecommendationService service.RecommendationService
	TextSignalAnalyzer    service.TextSignalAnalyzer
	EmbeddingModel        embedding.Model
	ApiRequestRepository  repository.ApiRequestRepository
	JwtSigningKey         string
}

var validate = validator.New()

func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundmatch"})
	})
	router.GET("/metrics", metrics.Handler())

	router.POST("/analyzeNotes", m.analyzeNotes)
	router.POST("/scoreEntrepreneur", m.scoreEntrepreneur)
	router.POST("/assessOpportunity", m.assessOpportunity)

	authenticated := router.Group("/", m.authMiddleware)
	authenticated.POST("/recommendations", m.recommendations)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()

	var req *model.APIRequest
	if m.Db != nil {
		req, err = m.ApiRequestRepository.Add(m.Db, model.APIRequest{
			IPAddress:   strPtr(ctx.ClientIP()),
			Method:      ctx.Request.Method,
			Route:       ctx.Request.URL.Path,
			RequestBody: strPtr(string(body)),
			StartTs:     start,
		})
		if err != nil {
			logger.Warn("failed to record api request: %v", err)
		}
	}

	ctx.Next()

	if req != nil {
		err = m.ApiRequestRepository.SetDuration(m.Db, req.APIRequestID, time.Since(start).Milliseconds())
		if err != nil {
			logger.Warn("failed to record api request duration: %v", err)
		}
	}
}
