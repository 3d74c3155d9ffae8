package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"trial-shop/controllers"
	"trial-shop/metrics"
	"trial-shop/middleware"
	"trial-shop/services"
)

type Options struct {
	Checkout      *services.CheckoutService
	Actions       controllers.ActionLister
	Metrics       *metrics.Registry
	Logger        *zap.Logger
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookie  bool
	StaticDir     string
	AdminKeyHash  string
}

func SetupRoutes(router *gin.Engine, opts Options) {
	sessionCtrl := &controllers.SessionController{
		Checkout:     opts.Checkout,
		Logger:       opts.Logger,
		Secret:       opts.SessionSecret,
		TTL:          opts.SessionTTL,
		SecureCookie: opts.SecureCookie,
	}
	productCtrl := &controllers.ProductController{Checkout: opts.Checkout, Logger: opts.Logger}
	cartCtrl := &controllers.CartController{Checkout: opts.Checkout, Logger: opts.Logger}
	checkoutCtrl := &controllers.CheckoutController{Checkout: opts.Checkout, Logger: opts.Logger}
	adminCtrl := &controllers.AdminController{Actions: opts.Actions, Logger: opts.Logger}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, middleware.StartPath) })
	router.GET("/start", sessionCtrl.GetStart)
	router.POST("/start", sessionCtrl.Start)

	shop := router.Group("/")
	shop.Use(middleware.SessionMiddleware(opts.SessionSecret, opts.Checkout, opts.Logger))
	{
		shop.POST("/session/reset", sessionCtrl.Reset)

		shop.GET("/products", productCtrl.GetAllProducts)
		shop.GET("/products/:id", productCtrl.GetProductByID)

		shop.GET("/cart", cartCtrl.GetCart)
		shop.POST("/cart/add", cartCtrl.AddItem)
		shop.POST("/cart/update", cartCtrl.UpdateItem)
		shop.POST("/api/cart/add", cartCtrl.AddItemJSON)
		shop.POST("/api/cart/update", cartCtrl.UpdateItemJSON)

		shop.POST("/cart/proceed", checkoutCtrl.Proceed)
		shop.GET("/confirm", checkoutCtrl.GetConfirm)
		shop.POST("/confirm/back", checkoutCtrl.Back)
		shop.POST("/confirm/purchase", checkoutCtrl.Purchase)
		shop.GET("/complete", checkoutCtrl.GetComplete)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AdminMiddleware(opts.AdminKeyHash))
	{
		admin.GET("/actions", adminCtrl.GetActions)
	}

	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}
}
