// Package swagger registers the OpenAPI document served at /swagger. It
// mirrors the @-annotations on the webapi handlers; every /api route must
// have a path entry here.
package swagger

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
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/currencies": {
            "get": {
                "description": "Get every supported issue currency with its EUR and GBP conversion rate",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List all currencies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/currency.CurrencyResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/currencies/normalize": {
            "post": {
                "description": "Convert an amount in a supported currency to EUR and GBP with the static rate tables",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Normalize an amount",
                "parameters": [
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/currency.NormalizeRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/currency.NormalizeResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/currencies/search": {
            "get": {
                "description": "Search for currencies by code, name or country",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Search currencies",
                "parameters": [
                    {"type": "string", "description": "Search query", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/currency.CurrencyResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/currencies/supported": {
            "get": {
                "description": "Get all supported currency codes",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"type": "array", "items": {"type": "string"}}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/currencies/{code}": {
            "get": {
                "description": "Get currency information by ISO 4217 code",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get currency by code",
                "parameters": [
                    {"type": "string", "description": "Currency code (e.g., USD, EUR)", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/currency.CurrencyResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/deferrals": {
            "post": {
                "description": "Compute the UK and EU post-trade transparency deferral for a bond trade",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["deferrals"],
                "summary": "Assess a trade",
                "parameters": [
                    {
                        "description": "Trade",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/deferral.TradeRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/deferral.AssessmentResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/deferrals/corporate-covered": {
            "post": {
                "description": "Compute the UK corporate/covered deferral and both EU corporate and covered deferrals",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["deferrals"],
                "summary": "Assess a corporate or covered bond trade",
                "parameters": [
                    {
                        "description": "Trade",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/deferral.CorporateCoveredRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/deferral.AssessmentResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/deferrals/{id}": {
            "get": {
                "description": "Fetch a previously computed assessment while it is still cached",
                "produces": ["application/json"],
                "tags": ["deferrals"],
                "summary": "Get an assessment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Assessment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/deferral.AssessmentResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        }
    },
    "definitions": {
        "common.ProblemDetails": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {},
                "instance": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "common.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "currency.CurrencyResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "country": {"type": "string"},
                "decimals": {"type": "integer"},
                "name": {"type": "string"},
                "rate_eur": {"type": "string"},
                "rate_gbp": {"type": "string"},
                "region": {"type": "string"},
                "symbol": {"type": "string"}
            }
        },
        "currency.NormalizeRequest": {
            "type": "object",
            "required": ["amount", "currency"],
            "properties": {
                "amount": {"type": "number", "minimum": 0},
                "currency": {
                    "type": "string",
                    "enum": ["EUR", "USD", "GBP", "PLN", "HUF", "CZK", "RON", "NOK", "DKK", "SEK", "ISK", "BGN", "CHF", "CAD", "JPY"]
                }
            }
        },
        "currency.NormalizeResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "currency": {"type": "string"},
                "eur": {"type": "string"},
                "gbp": {"type": "string"}
            }
        },
        "deferral.AmountsDTO": {
            "type": "object",
            "properties": {
                "issue_size_eur": {"type": "string"},
                "issue_size_gbp": {"type": "string"},
                "trade_size_eur": {"type": "string"},
                "trade_size_gbp": {"type": "string"}
            }
        },
        "deferral.AssessmentResponse": {
            "type": "object",
            "properties": {
                "amounts": {"$ref": "#/definitions/deferral.AmountsDTO"},
                "category": {"type": "string"},
                "id": {"type": "string"},
                "notes": {"type": "array", "items": {"type": "string"}},
                "results": {"type": "array", "items": {"$ref": "#/definitions/deferral.ResultDTO"}}
            }
        },
        "deferral.CorporateCoveredRequest": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "enum": ["EUR", "USD", "GBP", "PLN", "HUF", "CZK", "RON", "NOK", "DKK", "SEK", "ISK", "BGN", "CHF", "CAD", "JPY"]
                },
                "issue_size": {"type": "number"},
                "rating": {"type": "string", "enum": ["IG", "HY"]},
                "trade_size": {"type": "number"}
            }
        },
        "deferral.ResultDTO": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "deferral": {"type": "string"},
                "error": {"type": "string"},
                "regime": {"type": "string"},
                "tier": {"type": "integer"},
                "variant": {"type": "string"}
            }
        },
        "deferral.TradeRequest": {
            "type": "object",
            "required": ["category"],
            "properties": {
                "category": {
                    "type": "string",
                    "enum": ["sovereign-public", "corporate-convertible-other", "covered"]
                },
                "currency": {
                    "type": "string",
                    "enum": ["EUR", "USD", "GBP", "PLN", "HUF", "CZK", "RON", "NOK", "DKK", "SEK", "ISK", "BGN", "CHF", "CAD", "JPY"]
                },
                "issue_size": {"type": "number"},
                "issuer_country": {"type": "string", "enum": ["UK", "FR", "DE", "IT", "US", "ES", "Other"]},
                "maturity": {"type": "string", "enum": ["<5", "5-15", ">15"]},
                "rating": {"type": "string", "enum": ["IG", "HY"]},
                "strip_or_inflation": {"type": "boolean"},
                "trade_size": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ICMA Deferral Calculator API",
	Description:      "Post-trade transparency deferral calculator for bond trades under the UK and EU regimes",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
