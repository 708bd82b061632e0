// Package docs holds the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/tienda/main.go -o docs
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
    "paths": {
        "/admin/articulos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List articulos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create an articulo",
                "parameters": [
                    {"in": "body", "name": "articulo", "required": true, "schema": {"$ref": "#/definitions/models.ArticuloInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/admin/articulos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Load one articulo for editing",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update an articulo",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "articulo", "required": true, "schema": {"$ref": "#/definitions/models.ArticuloInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete an articulo",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Confirmation required", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/store/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Filter the cached catalog",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "precio", "in": "query"},
                    {"type": "boolean", "name": "reload", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/store/buckets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Price buckets from the last successful load",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}}
            }
        },
        "/store/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Cart of the session",
                "parameters": [{"type": "string", "name": "X-Cart-Session", "in": "header"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Empty the cart",
                "parameters": [
                    {"type": "string", "name": "X-Cart-Session", "in": "header"},
                    {"type": "boolean", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Confirmation required", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/store/cart/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add a product, or one more of it",
                "parameters": [
                    {"type": "string", "name": "X-Cart-Session", "in": "header"},
                    {"in": "body", "name": "item", "required": true, "schema": {"$ref": "#/definitions/models.AddToCartRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}}
            }
        },
        "/store/cart/items/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Change a line's quantity by one",
                "parameters": [
                    {"type": "string", "name": "X-Cart-Session", "in": "header"},
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "delta", "required": true, "schema": {"$ref": "#/definitions/models.ChangeQuantityRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Remove a line",
                "parameters": [
                    {"type": "string", "name": "X-Cart-Session", "in": "header"},
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}}
            }
        },
        "/store/checkout/summary": {
            "post": {
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Review the order totals with shipping",
                "parameters": [{"type": "string", "name": "X-Cart-Session", "in": "header"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Empty cart", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/store/checkout/confirm": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Place the order",
                "parameters": [
                    {"type": "string", "name": "X-Cart-Session", "in": "header"},
                    {"in": "body", "name": "checkout", "required": true, "schema": {"$ref": "#/definitions/models.CheckoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "409": {"description": "Checkout in progress", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ArticuloInput": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "precio": {"type": "number"}
            }
        },
        "models.AddToCartRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "precio": {"type": "number"}
            }
        },
        "models.ChangeQuantityRequest": {
            "type": "object",
            "properties": {
                "delta": {"type": "integer", "enum": [-1, 1]}
            }
        },
        "models.CheckoutRequest": {
            "type": "object",
            "properties": {
                "cliente": {
                    "type": "object",
                    "properties": {
                        "nombre": {"type": "string"},
                        "email": {"type": "string"},
                        "telefono": {"type": "string"},
                        "direccion": {"type": "string"}
                    }
                },
                "metodoPago": {"type": "string"}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "notice": {
                    "type": "object",
                    "properties": {
                        "level": {"type": "string"},
                        "message": {"type": "string"}
                    }
                },
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "level": {"type": "string"},
                        "details": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Tienda API",
	Description:      "Catalog administration and storefront for the articulos REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
