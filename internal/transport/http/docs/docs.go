// Package docs registers the OpenAPI document served at /openapi.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create a new account",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AuthRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Login already exists or body invalid"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a token pair",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AuthRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "403": {"description": "Unknown login or wrong password"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Rotate a refresh token into a new pair",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "401": {"description": "Refresh token missing"},
                    "403": {"description": "Refresh token revoked, expired or orphaned"}
                }
            }
        },
        "/user": {
            "get": {"tags": ["user"], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["user"], "summary": "Create a user", "responses": {"201": {"description": "Created"}}}
        },
        "/user/{id}": {
            "get": {"tags": ["user"], "summary": "Get a user", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["user"], "summary": "Change a password", "responses": {"200": {"description": "OK"}, "403": {"description": "Wrong old password"}}},
            "delete": {"tags": ["user"], "summary": "Delete a user", "responses": {"204": {"description": "Deleted"}}}
        },
        "/artist": {
            "get": {"tags": ["artist"], "summary": "List artists", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["artist"], "summary": "Create an artist", "responses": {"201": {"description": "Created"}}}
        },
        "/artist/{id}": {
            "get": {"tags": ["artist"], "summary": "Get an artist", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["artist"], "summary": "Update an artist", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["artist"], "summary": "Delete an artist", "responses": {"204": {"description": "Deleted"}}}
        },
        "/album": {
            "get": {"tags": ["album"], "summary": "List albums", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["album"], "summary": "Create an album", "responses": {"201": {"description": "Created"}}}
        },
        "/album/{id}": {
            "get": {"tags": ["album"], "summary": "Get an album", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["album"], "summary": "Update an album", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["album"], "summary": "Delete an album", "responses": {"204": {"description": "Deleted"}}}
        },
        "/track": {
            "get": {"tags": ["track"], "summary": "List tracks", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["track"], "summary": "Create a track", "responses": {"201": {"description": "Created"}}}
        },
        "/track/{id}": {
            "get": {"tags": ["track"], "summary": "Get a track", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["track"], "summary": "Update a track", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["track"], "summary": "Delete a track", "responses": {"204": {"description": "Deleted"}}}
        },
        "/favs": {
            "get": {"tags": ["favorites"], "summary": "List favorites", "responses": {"200": {"description": "OK"}}}
        },
        "/favs/artist/{id}": {
            "post": {"tags": ["favorites"], "summary": "Add an artist to favorites", "responses": {"201": {"description": "Added"}, "422": {"description": "Artist does not exist"}}},
            "delete": {"tags": ["favorites"], "summary": "Remove an artist from favorites", "responses": {"204": {"description": "Removed"}}}
        },
        "/favs/album/{id}": {
            "post": {"tags": ["favorites"], "summary": "Add an album to favorites", "responses": {"201": {"description": "Added"}, "422": {"description": "Album does not exist"}}},
            "delete": {"tags": ["favorites"], "summary": "Remove an album from favorites", "responses": {"204": {"description": "Removed"}}}
        },
        "/favs/track/{id}": {
            "post": {"tags": ["favorites"], "summary": "Add a track to favorites", "responses": {"201": {"description": "Added"}, "422": {"description": "Track does not exist"}}},
            "delete": {"tags": ["favorites"], "summary": "Remove a track from favorites", "responses": {"204": {"description": "Removed"}}}
        }
    },
    "definitions": {
        "AuthRequest": {
            "type": "object",
            "required": ["login", "password"],
            "properties": {
                "login": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RefreshRequest": {
            "type": "object",
            "properties": {
                "refreshToken": {"type": "string"}
            }
        },
        "TokenPair": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "refreshToken": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "login": {"type": "string"},
                "version": {"type": "integer"},
                "createdAt": {"type": "integer"},
                "updatedAt": {"type": "integer"}
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
	Title:            "Melodia API",
	Description:      "Music catalog REST service with token-based authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
