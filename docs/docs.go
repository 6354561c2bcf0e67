// Package docs holds the OpenAPI description served at /swagger.
// Keep it in sync with the godoc annotations on the controllers.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Database and change event publisher status",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Component health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/todos": {
            "get": {
                "description": "List todos, optionally filtered by completion and category",
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Get all todos",
                "parameters": [
                    {"type": "string", "description": "\"true\" for completed todos, anything else for uncompleted", "name": "done", "in": "query"},
                    {"type": "string", "description": "Exact category name", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "{message, todos}", "schema": {"$ref": "#/definitions/envelope"}},
                    "500": {"description": "{message, todos: null}", "schema": {"$ref": "#/definitions/envelope"}}
                }
            },
            "post": {
                "description": "Accepts JSON, urlencoded or multipart bodies. A multipart body may carry one image in the image or images field.",
                "consumes": ["application/json", "multipart/form-data", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create todo",
                "parameters": [
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"},
                    {"type": "string", "default": "General", "description": "Category", "name": "category", "in": "formData"},
                    {"type": "boolean", "default": false, "description": "Completed", "name": "done", "in": "formData"},
                    {"type": "file", "description": "Image (png, jpg, jpeg, gif, svg, webp)", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "{message, created}", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Validation error or rejected image", "schema": {"$ref": "#/definitions/envelope"}},
                    "500": {"description": "{message, created: null}", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        },
        "/todos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Get todo by id",
                "parameters": [
                    {"type": "string", "description": "Todo id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "{message, todo}", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/envelope"}},
                    "404": {"description": "Todo not found", "schema": {"$ref": "#/definitions/envelope"}}
                }
            },
            "put": {
                "description": "Partial update; only provided fields change. A multipart body may carry one image in the image field.",
                "consumes": ["application/json", "multipart/form-data", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Update todo",
                "parameters": [
                    {"type": "string", "description": "Todo id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData"},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"},
                    {"type": "string", "description": "Category", "name": "category", "in": "formData"},
                    {"type": "boolean", "description": "Completed", "name": "done", "in": "formData"},
                    {"type": "file", "description": "Image (png, jpg, jpeg, gif, svg, webp)", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "{message, updated}", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Validation error, malformed id or rejected image", "schema": {"$ref": "#/definitions/envelope"}},
                    "404": {"description": "Todo not found", "schema": {"$ref": "#/definitions/envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete todo",
                "parameters": [
                    {"type": "string", "description": "Todo id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "{message, deleted}", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/envelope"}},
                    "404": {"description": "Todo not found", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get all categories",
                "responses": {
                    "200": {"description": "{message, categories}", "schema": {"$ref": "#/definitions/envelope"}},
                    "500": {"description": "{message, categories: null}", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get category by id",
                "parameters": [
                    {"type": "string", "description": "Category id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "{message, category}", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/envelope"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        }
    },
    "definitions": {
        "envelope": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            },
            "additionalProperties": true
        },
        "entity.Todo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "image": {"type": "string"},
                "done": {"type": "boolean"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "entity.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "events": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Todo API",
	Description:      "Todo and category CRUD over a document store, with image upload.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
