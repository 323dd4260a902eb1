// Package docs registers the OpenAPI description of the employee API with swag
// so echo-swagger can serve it under /swagger/*.
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
        "/api/v1/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "List all employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.employeeResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Create an employee",
                "parameters": [
                    {"description": "Employee", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.employeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.employeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/v1/employees/lookup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Find one employee by email or full name",
                "parameters": [
                    {"type": "string", "description": "Exact email", "name": "email", "in": "query"},
                    {"type": "string", "description": "Exact first name", "name": "firstName", "in": "query"},
                    {"type": "string", "description": "Exact last name", "name": "lastName", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.employeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/v1/employees/range": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "List employees with ids in a range",
                "parameters": [
                    {"type": "integer", "description": "Lowest id", "name": "from", "in": "query", "required": true},
                    {"type": "integer", "description": "Highest id", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.employeeResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/v1/employees/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Search employees by name or email fragment",
                "parameters": [
                    {"type": "string", "description": "Fragment of first or last name", "name": "name", "in": "query"},
                    {"type": "string", "description": "Fragment of email", "name": "email", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.employeeResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/v1/employees/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Get an employee by id",
                "parameters": [
                    {"type": "integer", "description": "Employee id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.employeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Update an employee",
                "parameters": [
                    {"type": "integer", "description": "Employee id", "name": "id", "in": "path", "required": true},
                    {"description": "Employee", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.employeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.employeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["employees"],
                "summary": "Delete an employee",
                "parameters": [
                    {"type": "integer", "description": "Employee id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/v1/students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List all students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.studentResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Create a student",
                "parameters": [
                    {"description": "Student", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.studentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.studentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.employeeRequest": {
            "type": "object",
            "required": ["email", "firstName", "lastName"],
            "properties": {
                "email": {"type": "string", "maxLength": 255},
                "firstName": {"type": "string", "maxLength": 255},
                "lastName": {"type": "string", "maxLength": 255}
            }
        },
        "handler.employeeResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "id": {"type": "integer"},
                "lastName": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.studentRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "maxLength": 255},
                "firstName": {"type": "string", "maxLength": 255},
                "lastName": {"type": "string", "maxLength": 255}
            }
        },
        "handler.studentResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "id": {"type": "integer"},
                "lastName": {"type": "string"}
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
	Title:            "Employee API",
	Description:      "CRUD and lookup endpoints for employees and students.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
