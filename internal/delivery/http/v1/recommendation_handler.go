package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recUC        domain.RecommendationUsecase
	defaultLimit int
}

func NewRecommendationHandler(rg *gin.RouterGroup, recUC domain.RecommendationUsecase, defaultLimit int) {
	handler := &RecommendationHandler{recUC: recUC, defaultLimit: defaultLimit}

	recs := rg.Group("/recommendations")
	{
		recs.GET("", handler.List)
		recs.POST("/preview", handler.Preview)
	}
	rg.GET("/trends", handler.Trends)
	rg.POST("/interactions", handler.RecordInteraction)
}

// PreviewRequest carries a caller-owned profile and job pool for a pure
// ranking call that never touches the store.
type PreviewRequest struct {
	Profile domain.UserProfile `json:"profile" binding:"required"`
	Jobs    []domain.Job       `json:"jobs"`
	Limit   int                `json:"limit" binding:"required,gt=0"`
}

type InteractionRequest struct {
	Interaction domain.JobInteraction `json:"interaction" binding:"required"`
	Job         *domain.Job           `json:"job"`
}

// List godoc
// @Summary      Get personalized job recommendations
// @Description  Ranked, diversified recommendations for the calling user
// @Tags         recommendations
// @Produce      json
// @Param        limit      query     int     false  "Maximum results"  default(20)
// @Param        X-User-ID  header    string  true   "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recommendations [get]
func (h *RecommendationHandler) List(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.Error(apperror.BadRequest("X-User-ID header is required"))
		return
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.Error(apperror.BadRequest("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	recs, err := h.recUC.GetRecommendations(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendations retrieved", recs)
}

// Preview godoc
// @Summary      Rank a caller-supplied job pool
// @Description  Pure scoring over profile and jobs in the request body
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        request  body      PreviewRequest  true  "Profile and job pool"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /recommendations/preview [post]
func (h *RecommendationHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recs, err := h.recUC.PreviewRecommendations(c.Request.Context(), &req.Profile, req.Jobs, req.Limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendations computed", recs)
}

// Trends godoc
// @Summary      Get trending skill insights
// @Description  Market demand records sorted by demand growth, top 10
// @Tags         trends
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /trends [get]
func (h *RecommendationHandler) Trends(c *gin.Context) {
	insights := h.recUC.GetTrending(c.Request.Context())
	response.Success(c, http.StatusOK, "Trending insights retrieved", insights)
}

// RecordInteraction godoc
// @Summary      Record a job interaction
// @Description  Best-effort behavioral signal; accepted before persistence completes
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string              true  "User ID"
// @Param        request    body      InteractionRequest  true  "Interaction event"
// @Success      202  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interactions [post]
func (h *RecommendationHandler) RecordInteraction(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.Error(apperror.BadRequest("X-User-ID header is required"))
		return
	}

	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.recUC.RecordInteraction(c.Request.Context(), userID, &req.Interaction, req.Job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Interaction recorded", nil)
}
