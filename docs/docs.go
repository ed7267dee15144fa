// Package docs registers the herodex OpenAPI document with swag so that
// /swagger/ can serve it. Regenerate with:
//
//	swag init -g cmd/herodex/main.go -o docs
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
        "/catalog/entities": {
            "get": {
                "description": "Returns one page of the hero catalog. Page numbers start at 1; a missing page selects the first page. Out-of-range pages are rejected with 400.",
                "produces": ["application/json"],
                "tags": ["heroes"],
                "summary": "List heroes",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/catalog.APIResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/catalog.APIResponse"}
                    }
                }
            }
        },
        "/catalog/entities/search": {
            "get": {
                "description": "Case-insensitive substring search on hero names, in catalog order. An empty query returns no heroes.",
                "produces": ["application/json"],
                "tags": ["heroes"],
                "summary": "Search heroes",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Substring of the hero name",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/catalog.APIResponse"}
                    }
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/server.HealthResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "catalog.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "prevPage": {"type": "integer"},
                "nextPage": {"type": "integer"},
                "heroes": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.Hero"}
                },
                "lastUpdated": {"type": "integer"}
            }
        },
        "models.Hero": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "image": {"type": "string"},
                "about": {"type": "string"},
                "rating": {"type": "number"},
                "power": {"type": "integer"},
                "month": {"type": "string"},
                "day": {"type": "string"},
                "family": {"type": "array", "items": {"type": "string"}},
                "abilities": {"type": "array", "items": {"type": "string"}},
                "natureTypes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "server.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "object", "additionalProperties": {"type": "string"}},
                "heroes": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "herodex API",
	Description:      "Read-only hero catalog with paging and name search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
