package main

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	_ "github.com/MikeMC777/ordenes-backoffice/internal/docs"
	"github.com/MikeMC777/ordenes-backoffice/internal/events"
	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
	"github.com/MikeMC777/ordenes-backoffice/internal/telemetry"
)

type app struct {
	customers customer.Repository
	products  product.Repository
	orders    order.Repository
	auth      *auth.Service
	events    events.Publisher
	metrics   *telemetry.Metrics
	metricsH  http.Handler
	log       *slog.Logger
	now       func() time.Time
}

func newRouter(a app) *gin.Engine {
	if a.now == nil {
		a.now = time.Now
	}
	if a.events == nil {
		a.events = events.Nop{}
	}
	if a.log == nil {
		a.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), telemetry.HTTPRoute(), httpx.Logger(a.log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if a.metricsH != nil {
		r.GET("/metrics", gin.WrapH(a.metricsH))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/register", registerHandler(a.auth))
	api.POST("/login", loginHandler(a.auth, a.metrics))
	api.POST("/refresh", refreshHandler(a.auth))

	p := api.Group("", httpx.Auth(a.auth))
	p.POST("/logout", logoutHandler(a.auth))
	p.GET("/protected", protectedHandler())

	p.GET("/customers", listCustomersHandler(a.customers))
	p.GET("/customers/:id", getCustomerHandler(a.customers))
	p.POST("/customers", createCustomerHandler(a.customers))
	p.PUT("/customers/:id", updateCustomerHandler(a.customers))
	p.DELETE("/customers/:id", deleteCustomerHandler(a.customers))

	p.GET("/products", listProductsHandler(a.products))
	p.GET("/products/:id", getProductHandler(a.products))
	p.POST("/products", createProductHandler(a.products))
	p.PUT("/products/:id", updateProductHandler(a.products))
	p.DELETE("/products/:id", deleteProductHandler(a.products))

	d := orderDeps{orders: a.orders, products: a.products, events: a.events, metrics: a.metrics, log: a.log, now: a.now}
	p.GET("/orders", listOrdersHandler(d))
	p.GET("/orders/:id", getOrderHandler(d))
	p.GET("/orders/:id/lines", orderLinesHandler(d))
	p.POST("/orders", createOrderHandler(d))
	p.PUT("/orders/:id/order_type", updateStatusHandler(d, orderTypeUpdate))
	p.PUT("/orders/:id/payment_status", updateStatusHandler(d, paymentStatusUpdate))
	p.PUT("/orders/:id/delivery_status", updateStatusHandler(d, deliveryStatusUpdate))
	p.DELETE("/orders/:id", deleteOrderHandler(d))

	p.GET("/dashboard", dashboardHandler(a.orders, a.customers, a.products, a.now))
	return r
}
