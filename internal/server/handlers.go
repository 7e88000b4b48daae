package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacesedan/sentilite/internal/distribution"
	"github.com/spacesedan/sentilite/internal/models"
	"github.com/spacesedan/sentilite/internal/pipeline"
	"github.com/spacesedan/sentilite/internal/presentation"
)

type chartQuery struct {
	Label      string  `form:"label" binding:"required,oneof=POSITIVE NEGATIVE NEUTRAL"`
	Confidence float64 `form:"confidence" binding:"gte=0,lte=1"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	requestID := uuid.NewString()

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.AnalyzeResponse{RequestID: requestID, Error: "invalid request body"})
		return
	}

	ctx := pipeline.WithRequestID(c.Request.Context(), requestID)
	res, err := s.analyzer.Resolve(ctx, req.Text)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, pipeline.ErrEmptyInput) {
			status = http.StatusBadRequest
		} else {
			slog.Error("[Server] Analysis failed",
				slog.String("request_id", requestID),
				slog.String("error", err.Error()))
		}
		c.JSON(status, models.AnalyzeResponse{RequestID: requestID, Error: presentation.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, toResponse(requestID, res))
}

func toResponse(requestID string, res models.Resolution) models.AnalyzeResponse {
	v := presentation.NewView(res)
	return models.AnalyzeResponse{
		RequestID:    requestID,
		State:        res.State,
		Result:       v.Result,
		Distribution: v.Distribution,
		Display:      v.Headline,
		Confidence:   v.Confidence,
		Notice:       v.Notice,
		Advisory:     v.Advisory,
	}
}

// handleChart renders the distribution chart for a single result. Without a
// query it serves the chart rendered last.
func (s *Server) handleChart(c *gin.Context) {
	if len(c.Request.URL.Query()) == 0 {
		s.handleCurrentChart(c)
		return
	}

	var q chartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label and confidence are required"})
		return
	}

	dist := distribution.Build(models.ClassificationResult{
		Label:      models.SentimentLabel(q.Label),
		Confidence: q.Confidence,
	})

	var buf bytes.Buffer
	if err := s.chart.Render(&buf, dist); err != nil {
		slog.Error("[Server] Chart render failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleCurrentChart(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.chart.RenderCurrent(&buf); err != nil {
		if errors.Is(err, presentation.ErrNoChart) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no chart yet"})
			return
		}
		slog.Error("[Server] Chart render failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	remote := "unknown"
	if s.remoteHealthy != nil {
		remote = "unhealthy"
		if s.remoteHealthy.Load() {
			remote = "healthy"
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "remote": remote})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
