package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trial-shop/middleware"
	"trial-shop/models"
	"trial-shop/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

// @Summary Proceed to confirmation
// @Tags Checkout
// @Success 303 "Redirect to /confirm"
// @Router /cart/proceed [post]
func (ctrl *CheckoutController) Proceed(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	if _, err := ctrl.Checkout.Proceed(c.Request.Context(), sess); err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/confirm")
}

// @Summary Confirmation page
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /confirm [get]
func (ctrl *CheckoutController) GetConfirm(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	view, err := ctrl.Checkout.ViewConfirm(c.Request.Context(), sess)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Please confirm your purchase",
		"data":    models.CartData{State: sess.State, Cart: *view},
	})
}

// @Summary Back to cart
// @Tags Checkout
// @Success 303 "Redirect to /cart"
// @Router /confirm/back [post]
func (ctrl *CheckoutController) Back(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	if _, err := ctrl.Checkout.Back(c.Request.Context(), sess); err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// @Summary Complete purchase
// @Tags Checkout
// @Success 303 "Redirect to /complete"
// @Router /confirm/purchase [post]
func (ctrl *CheckoutController) Purchase(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	if _, err := ctrl.Checkout.Purchase(c.Request.Context(), sess); err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/complete")
}

// @Summary Thanks page
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /complete [get]
func (ctrl *CheckoutController) GetComplete(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	data, err := ctrl.Checkout.ViewCompletion(c.Request.Context(), sess)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your purchase", "data": data})
}
