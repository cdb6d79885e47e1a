package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
)

// @Summary  List customers
// @Tags     customers
// @Security BearerAuth
// @Param    search query string false "substring of name, phone, address or notes"
// @Success  200 {object} listResponse[customer.Customer]
// @Router   /customers [get]
func listCustomersHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		res, ok := paginate(c, customer.Filter(all, c.Query("search")))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Get a customer
// @Tags     customers
// @Security BearerAuth
// @Param    id path int true "customer id"
// @Success  200 {object} customer.Customer
// @Failure  404 {object} httpx.HTTPError
// @Router   /customers/{id} [get]
func getCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		cu, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, customer.ErrNotFound) {
			httpx.Abort(c, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, cu)
	}
}

// @Summary  Create a customer
// @Tags     customers
// @Security BearerAuth
// @Param    body body customer.Form true "customer"
// @Success  201 {object} customer.Customer
// @Failure  400 {object} httpx.HTTPError
// @Router   /customers [post]
func createCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f customer.Form
		if err := c.ShouldBindJSON(&f); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		if ve := f.Validate(); !ve.OK() {
			httpx.AbortValidation(c, ve)
			return
		}
		cu := f.ToCustomer()
		if err := repo.Create(c.Request.Context(), &cu); err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusCreated, cu)
	}
}

// @Summary  Replace a customer
// @Tags     customers
// @Security BearerAuth
// @Param    id   path int           true "customer id"
// @Param    body body customer.Form true "customer"
// @Success  200 {object} customer.Customer
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /customers/{id} [put]
func updateCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var f customer.Form
		if err := c.ShouldBindJSON(&f); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		if ve := f.Validate(); !ve.OK() {
			httpx.AbortValidation(c, ve)
			return
		}
		cu := f.ToCustomer()
		cu.ID = id
		err := repo.Update(c.Request.Context(), &cu)
		if errors.Is(err, customer.ErrNotFound) {
			httpx.Abort(c, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, cu)
	}
}

// @Summary  Delete a customer
// @Tags     customers
// @Security BearerAuth
// @Param    id path int true "customer id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /customers/{id} [delete]
func deleteCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if errors.Is(err, customer.ErrInUse) {
			httpx.Abort(c, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		if !deleted {
			httpx.Abort(c, http.StatusNotFound, customer.ErrNotFound.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}
