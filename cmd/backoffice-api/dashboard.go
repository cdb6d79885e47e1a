package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/dashboard"
	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
)

// @Summary  Sales and status aggregates
// @Tags     dashboard
// @Security BearerAuth
// @Success  200 {object} dashboard.Stats
// @Router   /dashboard [get]
func dashboardHandler(orders order.Repository, customers customer.Repository, products product.Repository, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			ords []order.Order
			cs   []customer.Customer
			ps   []product.Product
		)
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() (err error) { ords, err = orders.List(ctx); return })
		g.Go(func() (err error) { cs, err = customers.List(ctx); return })
		g.Go(func() (err error) { ps, err = products.List(ctx); return })
		if err := g.Wait(); err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, dashboard.Compute(ords, len(cs), len(ps), now()))
	}
}
