package api

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
        "/health": {"get": {"produces": ["application/json"], "tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/status": {"get": {"produces": ["application/json"], "tags": ["health"], "summary": "Snapshot status", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airports": {"get": {"produces": ["application/json"], "tags": ["airports"], "summary": "List airports", "parameters": [
            {"type": "string", "name": "ident", "in": "query"},
            {"type": "string", "name": "iso_country", "in": "query"},
            {"type": "string", "name": "iso_region", "in": "query"},
            {"type": "string", "name": "gps_code", "in": "query"},
            {"type": "string", "name": "iata_code", "in": "query"},
            {"type": "string", "name": "local_code", "in": "query"},
            {"type": "boolean", "name": "pretty", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airports/{id}": {"get": {"produces": ["application/json"], "tags": ["airports"], "summary": "Get an airport", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airports/{id}/location": {"get": {"produces": ["application/json"], "tags": ["airports"], "summary": "Get an airport location", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ourairports.Location"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airports/{id}/runways": {"get": {"produces": ["application/json"], "tags": ["airports"], "summary": "List the runways of an airport", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airports/{id}/frequencies": {"get": {"produces": ["application/json"], "tags": ["airports"], "summary": "List the frequencies of an airport", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/runways": {"get": {"produces": ["application/json"], "tags": ["runways"], "summary": "List runways", "parameters": [
            {"type": "integer", "name": "airport_ref", "in": "query"},
            {"type": "string", "name": "airport_ident", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/runways/{id}": {"get": {"produces": ["application/json"], "tags": ["runways"], "summary": "Get a runway", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/runways/{id}/ends/{end}": {"get": {"produces": ["application/json"], "tags": ["runways"], "summary": "Get one runway end", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "string", "enum": ["le", "he"], "name": "end", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/runways/{id}/ends": {"get": {"produces": ["application/json"], "tags": ["runways"], "summary": "Get both ends of a runway", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/navaids": {"get": {"produces": ["application/json"], "tags": ["navaids"], "summary": "List navaids", "parameters": [
            {"type": "string", "name": "filename", "in": "query"},
            {"type": "string", "name": "ident", "in": "query"},
            {"type": "string", "name": "iso_country", "in": "query"},
            {"type": "string", "name": "associated_airport", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/navaids/{id}": {"get": {"produces": ["application/json"], "tags": ["navaids"], "summary": "Get a navaid", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/navaids/{id}/location": {"get": {"produces": ["application/json"], "tags": ["navaids"], "summary": "Get a navaid location", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "boolean", "name": "dme", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ourairports.Location"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airport-frequencies": {"get": {"produces": ["application/json"], "tags": ["airport-frequencies"], "summary": "List airport frequencies", "parameters": [
            {"type": "integer", "name": "airport_ref", "in": "query"},
            {"type": "string", "name": "airport_ident", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/airport-frequencies/{id}": {"get": {"produces": ["application/json"], "tags": ["airport-frequencies"], "summary": "Get an airport frequency", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/countries": {"get": {"produces": ["application/json"], "tags": ["countries"], "summary": "List countries", "parameters": [
            {"type": "string", "name": "code", "in": "query"},
            {"type": "string", "name": "continent", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/countries/{id}": {"get": {"produces": ["application/json"], "tags": ["countries"], "summary": "Get a country", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/regions": {"get": {"produces": ["application/json"], "tags": ["regions"], "summary": "List regions", "parameters": [
            {"type": "string", "name": "code", "in": "query"},
            {"type": "string", "name": "local_code", "in": "query"},
            {"type": "string", "name": "iso_country", "in": "query"},
            {"type": "string", "name": "continent", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}},
        "/regions/{id}": {"get": {"produces": ["application/json"], "tags": ["regions"], "summary": "Get a region", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}}}}
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "api.StatusResponse": {
            "type": "object",
            "properties": {
                "counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "loaded_at": {"type": "string"},
                "snapshot": {"type": "string"}
            }
        },
        "ourairports.Location": {
            "type": "object",
            "properties": {
                "elevation_ft": {"type": "integer"},
                "latitude_deg": {"type": "number"},
                "longitude_deg": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "OurAirports REST API",
	Description:      "Read-only JSON API over the OurAirports datasets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
