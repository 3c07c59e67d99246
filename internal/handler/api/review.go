package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/httperr"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	q    queries.ReviewQueries
	cmds commands.ReviewCommands
}

func NewReviewHandler(q queries.ReviewQueries, cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{q: q, cmds: cmds}
}

// @Summary List reviews
// @Description Latest guest reviews for the public site
// @Tags reviews
// @Produce json
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ReviewListResponse
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.q.List(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Review statistics
// @Description Review count and average rating
// @Tags reviews
// @Produce json
// @Success 200 {object} resdto.ReviewStatsResponse
// @Router /reviews/stats [get]
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review stats", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewStats(stats))
}

// @Summary Create review
// @Description Post a guest review. Works with or without a session.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating),
			errors.Is(err, review.ErrEmptyContent),
			errors.Is(err, review.ErrContentTooLong),
			errors.Is(err, review.ErrEmptyReviewer):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create review", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.ReviewID.String()})
}

// @Summary Delete review
// @Tags admin/reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID); err != nil {
		if errors.Is(err, commands.ErrReviewNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete review", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
