// Package docs registers the swagger spec served at /swagger.
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
        "/api/venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Venues"],
                "summary": "List all venues",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/venues/recommended": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Propose a new venue (JSON)",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/venues/{venueID}/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reviews"],
                "summary": "List reviews for a venue",
                "parameters": [
                    {"type": "integer", "name": "venueID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reviews"],
                "summary": "Add a review to a venue",
                "parameters": [
                    {"type": "integer", "name": "venueID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/reviews/{reviewID}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Reviews"],
                "summary": "Delete a review (operator)",
                "parameters": [
                    {"type": "integer", "name": "reviewID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/submit-venue": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Propose a new venue (file upload)",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Operator login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Operator logout",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/admin/pending-venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "List pending venue submissions (operator)",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/admin/pending-venues/{submissionID}/approve": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Approve a pending submission (operator)",
                "parameters": [
                    {"type": "integer", "name": "submissionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/admin/pending-venues/{submissionID}/deny": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Deny a pending submission (operator)",
                "parameters": [
                    {"type": "integer", "name": "submissionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/admin/venues/{venueID}/delete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Venues"],
                "summary": "Delete a venue (operator)",
                "parameters": [
                    {"type": "integer", "name": "venueID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Festivo API",
	Description:      "Directory of event venues with moderated listings and reviews.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
