package api

import (
	"bytes"
	"encoding/json"
	"fundmatch/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	ctx.Request, err = http.NewRequest("POST", "/analyzeNotes", bytes.NewReader(payload))
	require.NoError(t, err)

	return ctx, recorder
}

func Test_analyzeNotes(t *testing.T) {
	handler := ApiHandler{
		TextSignalAnalyzer: service.NewTextSignalAnalyzer(nil),
	}

	t.Run("positive corpus", func(t *testing.T) {
		ctx, recorder := newTestContext(t, AnalyzeNotesRequest{
			Texts: []string{"completed the milestone", "great progress overall"},
		})

		handler.analyzeNotes(ctx)

		require.Equal(t, 200, recorder.Code)

		var response AnalyzeNotesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Equal(t, 70.0, response.Score)
		require.NotEmpty(t, response.Insights)
	})

	t.Run("missing texts is a 400", func(t *testing.T) {
		ctx, recorder := newTestContext(t, map[string]any{})

		handler.analyzeNotes(ctx)

		require.Equal(t, 400, recorder.Code)
	})
}
