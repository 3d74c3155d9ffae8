package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"trial-shop/middleware"
	"trial-shop/models"
	"trial-shop/services"
	"trial-shop/utils"
)

type SessionController struct {
	Checkout     *services.CheckoutService
	Logger       *zap.Logger
	Secret       string
	TTL          time.Duration
	SecureCookie bool
}

// @Summary Start page
// @Tags Session
// @Produce json
// @Success 200 {object} models.Response
// @Router /start [get]
func (ctrl *SessionController) GetStart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enter your participant ID to begin",
	})
}

// @Summary Start a session
// @Description Creates a session with an empty cart for the participant
// @Tags Session
// @Accept x-www-form-urlencoded
// @Param participant_id formData string true "Participant ID"
// @Success 303 "Redirect to /products"
// @Failure 400 {object} models.ErrorResponse
// @Router /start [post]
func (ctrl *SessionController) Start(c *gin.Context) {
	var req models.StartSessionRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		validationFailed(c, err)
		return
	}

	sess, err := ctrl.Checkout.Start(c.Request.Context(), req.ParticipantID)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	token, err := utils.GenerateSessionToken(ctrl.Secret, sess.ID, sess.ParticipantID, ctrl.TTL, time.Now())
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(ctrl.TTL.Seconds()), "/", "", ctrl.SecureCookie, true)
	c.Redirect(http.StatusSeeOther, "/products")
}

// @Summary Reset session
// @Description Empties the cart and returns to browsing
// @Tags Session
// @Success 303 "Redirect to /products"
// @Router /session/reset [post]
func (ctrl *SessionController) Reset(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	if err := ctrl.Checkout.Reset(c.Request.Context(), sess); err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}
