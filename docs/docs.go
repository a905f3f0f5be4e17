// Package docs holds the OpenAPI 2.0 description of the card API, served by Swagger UI at /swagger.
// It must be regenerated after every change to the swag annotations: go generate ./cmd/cardtracker
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
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ops"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/cards": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cards"
                ],
                "summary": "List cards",
                "parameters": [
                    {
                        "type": "string",
                        "description": "search player/card name, set or card ID",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Purchased, Grading, Selling, Sold or Other",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size (default 50, max 500)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "rows to skip",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.CardListResult"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cards"
                ],
                "summary": "Create a card",
                "parameters": [
                    {
                        "description": "card fields",
                        "name": "card",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.CardInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Card"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/cards/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cards"
                ],
                "summary": "Get a card",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "card primary key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Card"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cards"
                ],
                "summary": "Update a card",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "card primary key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "card fields",
                        "name": "card",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.CardInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Card"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "cards"
                ],
                "summary": "Delete a card",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "card primary key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/cards/{id}/photos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "photos"
                ],
                "summary": "List card photo URLs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "card primary key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "photos"
                ],
                "summary": "Upload a card photo",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "card primary key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "image file",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Card"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "415": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "Inventory statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Stats"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                }
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {
                    "type": "string"
                },
                "error": {
                    "$ref": "#/definitions/handler.errorEnvelope"
                }
            }
        },
        "model.CardInput": {
            "type": "object",
            "properties": {
                "player_card_name": {
                    "type": "string"
                },
                "year": {
                    "type": "string"
                },
                "set_name": {
                    "type": "string"
                },
                "card_type": {
                    "type": "string"
                },
                "sport": {
                    "type": "string"
                },
                "card_number": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "condition_purchased": {
                    "type": "string"
                },
                "cost": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "seller_name": {
                    "type": "string"
                },
                "listing_link": {
                    "type": "string"
                },
                "purchase_date": {
                    "type": "string",
                    "format": "date"
                },
                "status": {
                    "type": "string"
                },
                "grading_company": {
                    "type": "string"
                },
                "grading_cost": {
                    "type": "string"
                },
                "grade": {
                    "type": "string"
                },
                "grading_submitted_date": {
                    "type": "string",
                    "format": "date"
                },
                "grading_returned_date": {
                    "type": "string",
                    "format": "date"
                },
                "selling_platform": {
                    "type": "string"
                },
                "price": {
                    "type": "string"
                },
                "sale_date": {
                    "type": "string",
                    "format": "date"
                },
                "photo_links": {
                    "description": "comma-separated links; a JSON array of links is also accepted",
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "model.Card": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "card_id": {
                    "type": "string"
                },
                "player_card_name": {
                    "type": "string"
                },
                "year": {
                    "type": "string"
                },
                "set_name": {
                    "type": "string"
                },
                "card_type": {
                    "type": "string"
                },
                "sport": {
                    "type": "string"
                },
                "card_number": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "condition_purchased": {
                    "type": "string"
                },
                "cost": {
                    "type": "number",
                    "x-nullable": true
                },
                "source": {
                    "type": "string"
                },
                "seller_name": {
                    "type": "string"
                },
                "listing_link": {
                    "type": "string"
                },
                "purchase_date": {
                    "type": "string",
                    "format": "date"
                },
                "status": {
                    "type": "string"
                },
                "grading_company": {
                    "type": "string"
                },
                "grading_cost": {
                    "type": "number",
                    "x-nullable": true
                },
                "grade": {
                    "type": "string"
                },
                "grading_submitted_date": {
                    "type": "string",
                    "format": "date"
                },
                "grading_returned_date": {
                    "type": "string",
                    "format": "date"
                },
                "selling_platform": {
                    "type": "string"
                },
                "price": {
                    "type": "number",
                    "x-nullable": true
                },
                "sale_date": {
                    "type": "string",
                    "format": "date"
                },
                "photo_links": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "notes": {
                    "type": "string"
                },
                "days_to_grade": {
                    "type": "integer",
                    "x-nullable": true
                },
                "days_to_sell": {
                    "type": "integer",
                    "x-nullable": true
                },
                "profit_loss": {
                    "type": "number",
                    "x-nullable": true
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "service.CardListResult": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Card"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                }
            }
        },
        "service.Stats": {
            "type": "object",
            "properties": {
                "total_cards": {
                    "type": "integer"
                },
                "by_status": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "total_invested": {
                    "type": "number"
                },
                "total_revenue": {
                    "type": "number"
                },
                "total_profit": {
                    "type": "number"
                },
                "sold_count": {
                    "type": "integer"
                },
                "average_days_to_sell": {
                    "type": "number"
                }
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
	Title:            "Card Tracker API",
	Description:      "Trading card inventory: purchases, grading, sales and profit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
