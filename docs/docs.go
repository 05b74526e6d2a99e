// Package docs expone la definición OpenAPI del hub para /swagger.
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
        "/shelters": {
            "get": {
                "description": "Lista de refugios anotada con is_fav para el usuario autenticado. Anónimo: is_fav siempre false.",
                "produces": ["application/json"],
                "tags": ["shelters"],
                "summary": "Listar refugios",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/shelters.shelterResponse"}}},
                    "502": {"description": "upstream error", "schema": {"type": "string"}}
                }
            }
        },
        "/shelters/{shelterID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shelters"],
                "summary": "Detalle de refugio",
                "parameters": [{"type": "string", "description": "ID del refugio", "name": "shelterID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/shelters.shelterResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/shelters/{shelterID}/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Mascotas de un refugio",
                "parameters": [{"type": "string", "description": "ID del refugio", "name": "shelterID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}}
                }
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "parameters": [
                    {"type": "string", "description": "ID del refugio", "name": "shelter_id", "in": "query"},
                    {"type": "string", "description": "dog|cat|other", "name": "species", "in": "query"},
                    {"type": "string", "description": "available|pending|adopted", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}},
                    "400": {"description": "filtro inválido", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Detalle de mascota",
                "parameters": [{"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/me/favorites/{kind}/{entityID}/toggle": {
            "post": {
                "description": "Cambio optimista sobre las vistas del usuario. Si el backend rechaza, se revierte y responde 502 con el estado revertido.",
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Marcar / desmarcar favorito",
                "parameters": [
                    {"type": "string", "description": "shelters|pets", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "ID del refugio o mascota", "name": "entityID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/favorites.toggleResponse"}},
                    "409": {"description": "toggle pendiente", "schema": {"type": "string"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/favorites.toggleResponse"}}
                }
            }
        },
        "/me/favorites/journal": {
            "get": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Historial de toggles",
                "parameters": [{"type": "integer", "description": "máximo de entradas (default 50, máx 200)", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/favorites.journalEntryResponse"}}}
                }
            }
        },
        "/forms/{kind}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Enviar formulario",
                "parameters": [{"type": "string", "description": "adoption|rescue|surrender|donation", "name": "kind", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid input", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "shelters.shelterResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "city": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "is_fav": {"type": "boolean"}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "shelter_id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string", "enum": ["dog", "cat", "other"]},
                "breed": {"type": "string"},
                "sex": {"type": "string", "enum": ["male", "female", "unknown"]},
                "age_months": {"type": "integer"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "status": {"type": "string", "enum": ["available", "pending", "adopted"]},
                "is_fav": {"type": "boolean"}
            }
        },
        "favorites.toggleResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "entity_id": {"type": "string"},
                "is_fav": {"type": "boolean"},
                "confirmed": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "favorites.journalEntryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "entity_id": {"type": "string"},
                "desired": {"type": "boolean"},
                "outcome": {"type": "string", "enum": ["confirmed", "reverted"]},
                "error": {"type": "string"},
                "created_at": {"type": "string"}
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
	Title:            "Pet Shelter Hub API",
	Description:      "Marketplace de refugios y mascotas con favoritos optimistas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
