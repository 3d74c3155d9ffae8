package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trial-shop/models"
)

type ActionLister interface {
	List(ctx context.Context, participantID string, limit int) ([]models.ActionRecord, error)
}

type AdminController struct {
	Actions ActionLister
	Logger  *zap.Logger
}

// @Summary Export action log
// @Description Newest experiment log records, optionally for one participant
// @Tags Admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param participant_id query string false "Participant ID"
// @Param limit query int false "Max records" default(100)
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/actions [get]
func (ctrl *AdminController) GetActions(c *gin.Context) {
	if ctrl.Actions == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Action log database is not configured",
		})
		return
	}

	var q models.ActionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationFailed(c, err)
		return
	}

	records, err := ctrl.Actions.List(c.Request.Context(), q.ParticipantID, q.Limit)
	if err != nil {
		ctrl.Logger.Error("failed to list actions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to list actions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Actions retrieved",
		"data":    records,
		"meta":    gin.H{"count": len(records), "limit": q.Limit},
	})
}
