package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trial-shop/middleware"
	"trial-shop/services"
)

type ProductController struct {
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

// @Summary List products
// @Description List the catalog with the participant's cart count
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Success 303 "No session or wrong checkout step"
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	data, err := ctrl.Checkout.ViewList(c.Request.Context(), sess)
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Products retrieved", "data": data})
}

// @Summary Get product
// @Description Product detail with specs and variant options
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	data, err := ctrl.Checkout.ViewDetail(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		handleError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product retrieved", "data": data})
}
