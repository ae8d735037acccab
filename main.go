package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/api"
	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/service"
	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/store"
	"github.com/ahmedabdellatiff010-commits/backend-nehad/pkg/config"
	"github.com/ahmedabdellatiff010-commits/backend-nehad/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	products := store.Open(cfg.ProductsFile)
	orders := store.Open(cfg.OrdersFile)

	catalogService := service.NewCatalogService(products)
	orderService := service.NewOrderService(products, orders)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.SetTrustedProxies(nil)

	r.Static("/admin", cfg.AdminDir)

	api.RegisterRoutes(r.Group("/api"), catalogService, orderService)
	r.NoRoute(api.NotFound)

	logrus.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"products": products.Len(),
		"orders":   orders.Len(),
	}).Info("storefront API listening")

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
