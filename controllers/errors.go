package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trial-shop/models"
)

var pagePaths = map[string]string{
	models.PageProductList: "/products",
	models.PageCart:        "/cart",
	models.PageConfirm:     "/confirm",
	models.PageComplete:    "/complete",
}

// PathForState is where a participant in state belongs.
func PathForState(state models.CheckoutState) string {
	if p, ok := pagePaths[state.Page()]; ok {
		return p
	}
	return "/products"
}

func validationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}

// handleError maps service errors onto responses. Only validation errors are
// shown to the participant; illegal steps redirect to the current page and
// everything else degrades without details.
func handleError(c *gin.Context, logger *zap.Logger, err error) {
	var it *models.IllegalTransitionError
	switch {
	case models.IsValidationError(err):
		validationFailed(c, err)
	case errors.As(err, &it):
		c.Redirect(http.StatusSeeOther, PathForState(it.From))
	case models.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
	case errors.Is(err, models.ErrSessionNotFound):
		c.Redirect(http.StatusSeeOther, "/start")
	case errors.Is(err, models.ErrCatalogInvalid):
		logger.Error("catalog unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Success: false, Message: "Catalog is unavailable"})
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Something went wrong"})
	}
}
