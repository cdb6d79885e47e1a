package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
)

// @Summary  List products
// @Tags     products
// @Security BearerAuth
// @Param    search      query string false "substring of name or description"
// @Param    active_only query bool   false "only active products"
// @Success  200 {object} listResponse[product.Product]
// @Router   /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := product.Filters{Search: c.Query("search")}
		if raw := c.Query("active_only"); raw != "" {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				httpx.Abort(c, http.StatusBadRequest, "active_only must be a boolean")
				return
			}
			f.ActiveOnly = b
		}
		all, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		res, ok := paginate(c, product.Filter(all, f))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Get a product
// @Tags     products
// @Security BearerAuth
// @Param    id path int true "product id"
// @Success  200 {object} product.Product
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, product.ErrNotFound) {
			httpx.Abort(c, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Create a product
// @Tags     products
// @Security BearerAuth
// @Param    body body product.Form true "product"
// @Success  201 {object} product.Product
// @Failure  400 {object} httpx.HTTPError
// @Router   /products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := product.NewForm()
		if err := c.ShouldBindJSON(&f); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		if ve := f.Validate(); !ve.OK() {
			httpx.AbortValidation(c, ve)
			return
		}
		p := f.ToProduct()
		if err := repo.Create(c.Request.Context(), &p); err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// @Summary  Replace a product
// @Tags     products
// @Security BearerAuth
// @Param    id   path int          true "product id"
// @Param    body body product.Form true "product"
// @Success  200 {object} product.Product
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [put]
func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		f := product.NewForm()
		if err := c.ShouldBindJSON(&f); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		if ve := f.Validate(); !ve.OK() {
			httpx.AbortValidation(c, ve)
			return
		}
		p := f.ToProduct()
		p.ID = id
		err := repo.Update(c.Request.Context(), &p)
		if errors.Is(err, product.ErrNotFound) {
			httpx.Abort(c, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// Deleting a product keeps the orders that reference it; they price the
// missing product at zero.
//
// @Summary  Delete a product
// @Tags     products
// @Security BearerAuth
// @Param    id path int true "product id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [delete]
func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		if !deleted {
			httpx.Abort(c, http.StatusNotFound, product.ErrNotFound.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}
