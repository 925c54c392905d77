// Package docs registers the swagger document served at /swagger.
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
        "/store/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Products"],
                "summary": "List storefront products",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}}
            }
        },
        "/store/products/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Products"],
                "summary": "Get filter facets",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}}
            }
        },
        "/store/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Products"],
                "summary": "Get a storefront product",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Categories"],
                "summary": "Get the category tree",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}}
            }
        },
        "/admin/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["CMS - Products"],
                "summary": "List catalog products",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}}
            }
        },
        "/admin/offers/apply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["CMS - Offers"],
                "summary": "Apply a storewide offer",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/dev/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dev - Catalog"],
                "summary": "Read the shared dev catalog",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}}
            },
            "put": {
                "produces": ["application/json"],
                "tags": ["Dev - Catalog"],
                "summary": "Replace the shared dev catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "boolean"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/models.ErrorDetail"}},
                "meta": {},
                "rate_limit": {},
                "requested_entity": {"type": "string"}
            }
        },
        "models.ErrorDetail": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "msg": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Dresscollections API",
	Description:      "Storefront catalog, CMS and shared dev catalog endpoints",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
