// Package docs registers the Swagger document served under /swagger.
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
        "/conversation/clear/{phone}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Clear conversation",
                "parameters": [
                    {"type": "string", "description": "Phone number", "name": "phone", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/conversation/{phone}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Conversation detail",
                "parameters": [
                    {"type": "string", "description": "Phone number", "name": "phone", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/webhook/whatsapp": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/xml"],
                "tags": ["Webhook"],
                "summary": "Twilio WhatsApp webhook",
                "parameters": [
                    {"type": "string", "name": "From", "in": "formData", "required": true},
                    {"type": "string", "name": "Body", "in": "formData"},
                    {"type": "string", "name": "MessageSid", "in": "formData"},
                    {"type": "integer", "name": "NumMedia", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Empty TwiML response"}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "WhatsApp Listing Bridge API",
	Description:      "Bridges Twilio WhatsApp messages to the listing agent backend, with per-user sessions and image ingestion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
