// Package docs is generated by swag init; regenerate after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/{bank}/simulate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Simulate refinancing conditions",
                "parameters": [
                    {"type": "string", "name": "bank", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.SimulationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/api/{bank}/include-proposal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Digitize a proposal and record it",
                "parameters": [
                    {"type": "string", "name": "bank", "in": "path", "required": true},
                    {"type": "string", "name": "X-Operator-ID", "in": "header"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/api/{bank}/formalization-link/{proposalNumber}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["formalization"],
                "summary": "Fetch the signing link once",
                "parameters": [
                    {"type": "string", "name": "bank", "in": "path", "required": true},
                    {"type": "string", "name": "proposalNumber", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/{bank}/formalization-link-attempts/{proposalNumber}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["formalization"],
                "summary": "Polling progress",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["formalization"],
                "summary": "Start polling for the signing link",
                "responses": {"202": {"description": "Accepted"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["formalization"],
                "summary": "Cancel polling",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/{bank}-digitizations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["digitizations"],
                "summary": "List digitization history",
                "parameters": [
                    {"type": "string", "name": "client_name", "in": "query"},
                    {"type": "string", "name": "cpf", "in": "query"},
                    {"type": "string", "name": "proposal_number", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "period", "in": "query", "enum": ["all", "today", "week", "month"]}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["digitizations"],
                "summary": "Record a digitization",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/{bank}-digitizations/refresh-status": {
            "post": {
                "produces": ["application/json"],
                "tags": ["digitizations"],
                "summary": "Refresh statuses from the partner",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/{bank}-digitizations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["digitizations"],
                "summary": "Get a digitization by proposal number",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/{bank}-digitizations/{id}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["digitizations"],
                "summary": "Update status and signing link",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/multicorban/cpf": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["benefits"],
                "summary": "Look up INSS benefits by CPF",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/workflows": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workflows"],
                "summary": "Start a proposal workflow",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/workflows/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workflows"],
                "summary": "Get a workflow run",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["workflows"],
                "summary": "Cancel a workflow run",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "retriable": {"type": "boolean"},
                "fields": {"type": "array", "items": {"type": "object"}}
            }
        },
        "request.SimulationRequest": {
            "type": "object",
            "required": ["contract_ids", "cpf", "enrollment_id", "mode"],
            "properties": {
                "cpf": {"type": "string"},
                "enrollment_id": {"type": "string"},
                "contract_ids": {"type": "array", "items": {"type": "string"}},
                "mode": {"type": "string", "enum": ["term", "installment"]},
                "installment_quantity": {"type": "integer"},
                "target_installment": {"type": "number"}
            }
        }
    },
    "securityDefinitions": {
        "OperatorID": {
            "description": "Identifier of the operator submitting proposals.",
            "type": "apiKey",
            "name": "X-Operator-ID",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "INSS Refinancing API",
	Description:      "Payroll-loan refinancing for INSS beneficiaries: simulation, digitization and formalization with partner banks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
