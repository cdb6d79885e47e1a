// Package docs registers the OpenAPI document served under /swagger.
// It follows the layout of `swag init` output and can be regenerated from
// the handler annotations in cmd/backoffice-api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["auth"], "summary": "Create a back-office user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}}, "400": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"], "summary": "Issue access and refresh tokens",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Tokens"}}, "401": {"$ref": "#/responses/Error"}}
            }
        },
        "/refresh": {
            "post": {
                "tags": ["auth"], "summary": "Rotate the token pair",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Tokens"}}, "401": {"$ref": "#/responses/Error"}}
            }
        },
        "/logout": {
            "post": {"tags": ["auth"], "summary": "Revoke all sessions of the caller", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/protected": {
            "get": {"tags": ["auth"], "summary": "Return the authenticated username", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"$ref": "#/responses/Error"}}}
        },
        "/customers": {
            "get": {
                "tags": ["customers"], "summary": "List customers", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "query", "name": "search", "type": "string"}, {"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["customers"], "summary": "Create a customer", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CustomerForm"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Customer"}}, "400": {"$ref": "#/responses/Error"}}
            }
        },
        "/customers/{id}": {
            "get": {"tags": ["customers"], "summary": "Get a customer", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Customer"}}, "404": {"$ref": "#/responses/Error"}}},
            "put": {"tags": ["customers"], "summary": "Replace a customer", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CustomerForm"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Customer"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"tags": ["customers"], "summary": "Delete a customer", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/products": {
            "get": {
                "tags": ["products"], "summary": "List products", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "query", "name": "search", "type": "string"}, {"in": "query", "name": "active_only", "type": "boolean"}, {"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["products"], "summary": "Create a product", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ProductForm"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Product"}}, "400": {"$ref": "#/responses/Error"}}
            }
        },
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Product"}}, "404": {"$ref": "#/responses/Error"}}},
            "put": {"tags": ["products"], "summary": "Replace a product", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ProductForm"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Product"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"tags": ["products"], "summary": "Delete a product", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/orders": {
            "get": {
                "tags": ["orders"], "summary": "List orders", "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "payment_status", "type": "string", "enum": ["not_paid", "paid"]},
                    {"in": "query", "name": "delivery_status", "type": "string", "enum": ["not_delivered", "delivered"]},
                    {"in": "query", "name": "order_type", "type": "string", "enum": ["pickup", "delivery"]},
                    {"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"$ref": "#/responses/Error"}}
            },
            "post": {
                "tags": ["orders"], "summary": "Create an order and compute its total", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/OrderForm"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Order"}}, "400": {"$ref": "#/responses/Error"}, "422": {"$ref": "#/responses/Error"}}
            }
        },
        "/orders/{id}": {
            "get": {"tags": ["orders"], "summary": "Get an order", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"tags": ["orders"], "summary": "Delete an order", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/orders/{id}/lines": {
            "get": {"tags": ["orders"], "summary": "Price the order items against the current catalog", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/orders/{id}/order_type": {
            "put": {"tags": ["orders"], "summary": "Set the order type", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"order_type": {"type": "string", "enum": ["pickup", "delivery"]}}}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/orders/{id}/payment_status": {
            "put": {"tags": ["orders"], "summary": "Set the payment status", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"payment_status": {"type": "string", "enum": ["not_paid", "paid"]}}}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/orders/{id}/delivery_status": {
            "put": {"tags": ["orders"], "summary": "Set the delivery status", "security": [{"BearerAuth": []}], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"delivery_status": {"type": "string", "enum": ["not_delivered", "delivered"]}}}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/dashboard": {
            "get": {"tags": ["dashboard"], "summary": "Sales and status aggregates", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "required": true, "type": "integer", "format": "int64"}
    },
    "responses": {
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/HTTPError"}}
    },
    "definitions": {
        "HTTPError": {"type": "object", "properties": {"error": {"type": "string"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "Credentials": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string", "minLength": 3, "maxLength": 80}, "password": {"type": "string", "minLength": 6}}},
        "User": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}}},
        "Tokens": {"type": "object", "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}, "token_type": {"type": "string"}, "expires_at": {"type": "string", "format": "date-time"}}},
        "CustomerForm": {"type": "object", "required": ["phone_number"], "properties": {"name": {"type": "string", "maxLength": 80}, "phone_number": {"type": "string", "minLength": 6, "maxLength": 20}, "address": {"type": "string", "maxLength": 255}, "notes": {"type": "string"}}},
        "Customer": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "phone_number": {"type": "string"}, "address": {"type": "string"}, "notes": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}, "updated_at": {"type": "string", "format": "date-time"}}},
        "ProductForm": {"type": "object", "required": ["name", "price"], "properties": {"name": {"type": "string", "maxLength": 80}, "price": {"type": "string", "example": "2.50"}, "description": {"type": "string", "maxLength": 255}, "picture_url": {"type": "string", "maxLength": 255}, "is_active": {"type": "boolean"}}},
        "Product": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "string"}, "description": {"type": "string"}, "picture_url": {"type": "string"}, "is_active": {"type": "boolean"}, "created_at": {"type": "string", "format": "date-time"}, "updated_at": {"type": "string", "format": "date-time"}}},
        "Item": {"type": "object", "required": ["product_id", "quantity"], "properties": {"product_id": {"type": "integer"}, "quantity": {"type": "integer", "minimum": 1}}},
        "OrderForm": {"type": "object", "required": ["customer_id", "items"], "properties": {"customer_id": {"type": "integer"}, "order_type": {"type": "string", "enum": ["pickup", "delivery"]}, "payment_status": {"type": "string", "enum": ["not_paid", "paid"]}, "delivery_status": {"type": "string", "enum": ["not_delivered", "delivered"]}, "datetime": {"type": "string"}, "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/Item"}}}},
        "Order": {"type": "object", "properties": {"id": {"type": "integer"}, "customer_id": {"type": "integer"}, "order_type": {"type": "string"}, "payment_status": {"type": "string"}, "delivery_status": {"type": "string"}, "datetime": {"type": "string", "format": "date-time"}, "items": {"type": "array", "items": {"$ref": "#/definitions/Item"}}, "total_amount": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Back-office API",
	Description:      "Customers, products and orders of the order-management back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
