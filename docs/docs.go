// Package docs holds the OpenAPI description served at /swagger in debug mode.
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
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/auth/register": {"post": {"tags": ["auth"], "summary": "Register an account and claim a subdomain", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/auth/login": {"post": {"tags": ["auth"], "summary": "Log in with email and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/auth/me": {"get": {"tags": ["auth"], "security": [{"Bearer": []}], "summary": "Current account", "responses": {"200": {"description": "OK"}}}},
        "/api/auth/check-subdomain/{subdomain}": {"get": {"tags": ["auth"], "summary": "Check subdomain availability", "parameters": [{"name": "subdomain", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/subscriptions/current": {"get": {"tags": ["subscriptions"], "security": [{"Bearer": []}], "summary": "Current subscription", "responses": {"200": {"description": "OK"}}}},
        "/api/subscriptions/plans": {"get": {"tags": ["subscriptions"], "security": [{"Bearer": []}], "summary": "Plan catalogue", "responses": {"200": {"description": "OK"}}}},
        "/api/subscriptions/limits/{resourceType}": {"get": {"tags": ["subscriptions"], "security": [{"Bearer": []}], "summary": "Usage against the plan limit", "parameters": [{"name": "resourceType", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/site": {"get": {"tags": ["site"], "summary": "Aggregated public site of the tenant on the request host", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/health": {"get": {"tags": ["ops"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Folio API",
	Description:      "Multi-tenant portfolio site builder.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
