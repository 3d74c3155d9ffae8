package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"trial-shop/middleware"
	"trial-shop/models"
	"trial-shop/services"
)

const CartCountHeader = "X-Cart-Count"

type CartController struct {
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

// @Summary View cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	view, err := ctrl.Checkout.ViewCart(c.Request.Context(), sess)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    models.CartData{State: sess.State, Cart: *view},
	})
}

// @Summary Add to cart (form)
// @Tags Cart
// @Accept x-www-form-urlencoded
// @Param product_id formData string true "Product ID"
// @Param room_type formData string false "Room type"
// @Param breakfast_option formData string false "Breakfast option"
// @Param quantity formData int true "Quantity"
// @Success 303 "Redirect to /cart"
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		validationFailed(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	if _, err := ctrl.Checkout.AddItem(c.Request.Context(), sess, req); err != nil {
		if models.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, "/products")
			return
		}
		handleError(c, ctrl.Logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// @Summary Add to cart (JSON)
// @Description Adds an item and returns the new cart count in X-Cart-Count
// @Tags Cart
// @Accept json
// @Param item body models.AddItemRequest true "Item"
// @Success 204 "Added"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/add [post]
func (ctrl *CartController) AddItemJSON(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	count, err := ctrl.Checkout.AddItem(c.Request.Context(), sess, req)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.Header(CartCountHeader, strconv.Itoa(count))
	c.Status(http.StatusNoContent)
}

// @Summary Update cart quantity (form)
// @Description Replaces the quantity; 0 or less removes the item
// @Tags Cart
// @Accept x-www-form-urlencoded
// @Param product_id formData string true "Product ID"
// @Param room_type formData string false "Room type"
// @Param breakfast_option formData string false "Breakfast option"
// @Param quantity formData int true "New quantity"
// @Success 303 "Redirect to /cart"
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/update [post]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		validationFailed(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	if _, err := ctrl.Checkout.UpdateItem(c.Request.Context(), sess, req); err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// @Summary Update cart quantity (JSON)
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.UpdateItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/update [post]
func (ctrl *CartController) UpdateItemJSON(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	view, err := ctrl.Checkout.UpdateItem(c.Request.Context(), sess, req)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.Header(CartCountHeader, strconv.Itoa(view.ItemCount))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
		"data":    models.CartData{State: sess.State, Cart: *view},
	})
}
