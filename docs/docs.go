// Package docs holds the OpenAPI description served at /swagger.
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
        "/start": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Session"],
                "summary": "Start a session",
                "parameters": [
                    {"type": "string", "name": "participant_id", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to /products"}, "400": {"description": "Bad Request"}}
            }
        },
        "/session/reset": {
            "post": {"tags": ["Session"], "summary": "Reset session", "responses": {"303": {"description": "Redirect to /products"}}}
        },
        "/products": {
            "get": {"produces": ["application/json"], "tags": ["Products"], "summary": "List products", "responses": {"200": {"description": "OK"}}}
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get product",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/cart": {
            "get": {"produces": ["application/json"], "tags": ["Cart"], "summary": "View cart", "responses": {"200": {"description": "OK"}}}
        },
        "/cart/add": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Cart"],
                "summary": "Add to cart (form)",
                "parameters": [
                    {"type": "string", "name": "product_id", "in": "formData", "required": true},
                    {"type": "string", "name": "room_type", "in": "formData"},
                    {"type": "string", "name": "breakfast_option", "in": "formData"},
                    {"type": "integer", "name": "quantity", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to /cart"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/cart/add": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["Cart"],
                "summary": "Add to cart (JSON)",
                "parameters": [{"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddItemRequest"}}],
                "responses": {"204": {"description": "Added; X-Cart-Count holds the new count"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cart/update": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Cart"],
                "summary": "Update cart quantity (form)",
                "parameters": [
                    {"type": "string", "name": "product_id", "in": "formData", "required": true},
                    {"type": "string", "name": "room_type", "in": "formData"},
                    {"type": "string", "name": "breakfast_option", "in": "formData"},
                    {"type": "integer", "name": "quantity", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to /cart"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/cart/update": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Update cart quantity (JSON)",
                "parameters": [{"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddItemRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cart/proceed": {
            "post": {"tags": ["Checkout"], "summary": "Proceed to confirmation", "responses": {"303": {"description": "Redirect to /confirm"}}}
        },
        "/confirm": {
            "get": {"produces": ["application/json"], "tags": ["Checkout"], "summary": "Confirmation page", "responses": {"200": {"description": "OK"}}}
        },
        "/confirm/back": {
            "post": {"tags": ["Checkout"], "summary": "Back to cart", "responses": {"303": {"description": "Redirect to /cart"}}}
        },
        "/confirm/purchase": {
            "post": {"tags": ["Checkout"], "summary": "Complete purchase", "responses": {"303": {"description": "Redirect to /complete"}}}
        },
        "/complete": {
            "get": {"produces": ["application/json"], "tags": ["Checkout"], "summary": "Thanks page", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/actions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Export action log",
                "parameters": [
                    {"type": "string", "name": "X-Admin-Key", "in": "header", "required": true},
                    {"type": "string", "name": "participant_id", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "models.AddItemRequest": {
            "type": "object",
            "required": ["product_id", "quantity"],
            "properties": {
                "product_id": {"type": "string"},
                "room_type": {"type": "string"},
                "breakfast_option": {"type": "string"},
                "quantity": {"type": "integer"}
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
	Title:            "Trial Shop API",
	Description:      "Experimental storefront that records participant cart actions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
