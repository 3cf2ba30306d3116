// Package docs registers the OpenAPI document served at /swagger. It mirrors
// the godoc annotations on the HTTP handlers; regenerate with
// `swag init -g cmd/api/main.go` after changing them.
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
                "description": "Pipeline state: catalog and index sizes, embedder and live sessions",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Ready once the index holds at least one vector",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "503": {
                        "description": "Index is empty",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness Check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/classify": {
            "post": {
                "description": "Runs the full pipeline for one utterance: intent, slots, multi-intent split, context boost and disambiguation. The turn is recorded on the conversation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Classifier"
                ],
                "summary": "Classify an utterance",
                "parameters": [
                    {
                        "description": "Utterance and conversation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.classifyReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.classifyResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/candidates": {
            "post": {
                "description": "Returns the top_k intents by averaged similarity without touching any conversation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Classifier"
                ],
                "summary": "Rank candidate intents",
                "parameters": [
                    {
                        "description": "Utterance and top_k (default 3)",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.utteranceReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.candidatesResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/multi-intent": {
            "post": {
                "description": "Segments the utterance, classifies each part and suggests an execution order.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Classifier"
                ],
                "summary": "Split a compound request",
                "parameters": [
                    {
                        "description": "Utterance",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.utteranceReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.multiIntentResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/slots": {
            "post": {
                "description": "Extracts typed parameters for the given intent, or common entities only when intent is empty.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Classifier"
                ],
                "summary": "Extract slots",
                "parameters": [
                    {
                        "description": "Utterance and optional intent",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.utteranceReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.slotsResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/disambiguation": {
            "post": {
                "description": "Reports whether the top two intents are too close and, if so, the clarification question.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Disambiguation"
                ],
                "summary": "Check for ambiguity",
                "parameters": [
                    {
                        "description": "Utterance",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.utteranceReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.disambiguationResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/disambiguation/resolve": {
            "post": {
                "description": "Records the option the user picked from a clarification prompt.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Disambiguation"
                ],
                "summary": "Resolve a clarification",
                "parameters": [
                    {
                        "description": "Selected option",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.resolveReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.resolutionResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request - option out of range",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/intents": {
            "get": {
                "description": "Returns the catalog grouped by category.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Catalog"
                ],
                "summary": "List intents",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.intentsResp"
                        }
                    }
                }
            }
        },
        "/api/v1/intents/{name}": {
            "get": {
                "description": "Returns one catalog entry with its slot definitions and prompts.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Catalog"
                ],
                "summary": "Intent detail",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Intent name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.intentDetailResp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/sessions/{id}": {
            "get": {
                "description": "Returns recent turns, slot memory and pending sub-intents of a conversation.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Conversation context",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Conversation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Turns to return (default 5)",
                        "name": "turns",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.sessionResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Clear a conversation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Conversation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/sessions/{id}/next": {
            "get": {
                "description": "Returns the next queued sub-intent of the latest compound request.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Next pending sub-intent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Conversation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pendingResp"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {},
                "errors": {}
            }
        },
        "http.classifyReq": {
            "type": "object",
            "properties": {
                "user_input": {
                    "type": "string"
                },
                "conversation_id": {
                    "type": "string"
                },
                "member_id": {
                    "type": "string"
                },
                "context_aware": {
                    "type": "boolean"
                }
            }
        },
        "http.utteranceReq": {
            "type": "object",
            "properties": {
                "user_input": {
                    "type": "string"
                },
                "top_k": {
                    "type": "integer"
                },
                "intent": {
                    "type": "string"
                }
            }
        },
        "http.resolveReq": {
            "type": "object",
            "properties": {
                "conversation_id": {
                    "type": "string"
                },
                "selected_option": {
                    "type": "integer"
                },
                "original_utterance": {
                    "type": "string"
                }
            }
        },
        "http.contextResp": {
            "type": "object",
            "properties": {
                "context_applied": {
                    "type": "boolean"
                },
                "context_boosted": {
                    "type": "boolean"
                },
                "original_intent": {
                    "type": "string"
                },
                "original_confidence": {
                    "type": "number"
                },
                "context_match": {
                    "type": "string"
                }
            }
        },
        "http.subIntentResp": {
            "type": "object",
            "properties": {
                "segment": {
                    "type": "string"
                },
                "intent": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number"
                },
                "agent": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer"
                }
            }
        },
        "http.classifyResp": {
            "type": "object",
            "properties": {
                "conversation_id": {
                    "type": "string"
                },
                "intent": {
                    "type": "string"
                },
                "intent_id": {
                    "type": "string"
                },
                "agent": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer"
                },
                "confidence": {
                    "type": "number"
                },
                "top_match_score": {
                    "type": "number"
                },
                "context": {
                    "$ref": "#/definitions/http.contextResp"
                },
                "slots": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.SlotValue"
                    }
                },
                "merged_slots": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.SlotValue"
                    }
                },
                "missing_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.MissingSlot"
                    }
                },
                "slot_filling_complete": {
                    "type": "boolean"
                },
                "multi_intents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.subIntentResp"
                    }
                },
                "has_multi_intents": {
                    "type": "boolean"
                },
                "needs_clarification": {
                    "type": "boolean"
                },
                "disambiguation": {
                    "$ref": "#/definitions/model.DisambiguationOffer"
                },
                "candidates": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Candidate"
                    }
                },
                "processing_time_ms": {
                    "type": "number"
                }
            }
        },
        "http.candidatesResp": {
            "type": "object",
            "properties": {
                "user_input": {
                    "type": "string"
                },
                "candidates": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Candidate"
                    }
                }
            }
        },
        "http.multiIntentResp": {
            "type": "object",
            "properties": {
                "user_input": {
                    "type": "string"
                },
                "has_multiple_intents": {
                    "type": "boolean"
                },
                "intents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.subIntentResp"
                    }
                },
                "suggested_order": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "combined_response_possible": {
                    "type": "boolean"
                },
                "unique_agents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "http.slotsResp": {
            "type": "object",
            "properties": {
                "intent": {
                    "type": "string"
                },
                "extracted_slots": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.SlotValue"
                    }
                },
                "required_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.MissingSlot"
                    }
                },
                "missing_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.MissingSlot"
                    }
                }
            }
        },
        "http.disambiguationResp": {
            "type": "object",
            "properties": {
                "needed": {
                    "type": "boolean"
                },
                "reason": {
                    "type": "string"
                },
                "confidence_gap": {
                    "type": "number"
                },
                "prompt": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.DisambiguationOption"
                    }
                },
                "original_utterance": {
                    "type": "string"
                },
                "candidates": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Candidate"
                    }
                },
                "recommendation": {
                    "type": "string"
                }
            }
        },
        "http.resolutionResp": {
            "type": "object",
            "properties": {
                "conversation_id": {
                    "type": "string"
                },
                "intent": {
                    "type": "string"
                },
                "intent_id": {
                    "type": "string"
                },
                "agent": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number"
                },
                "disambiguation_resolved": {
                    "type": "boolean"
                }
            }
        },
        "http.intentsResp": {
            "type": "object",
            "properties": {
                "intents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Intent"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "by_category": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "$ref": "#/definitions/model.Intent"
                        }
                    }
                }
            }
        },
        "http.slotSpecResp": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "prompt": {
                    "type": "string"
                }
            }
        },
        "http.intentDetailResp": {
            "type": "object",
            "properties": {
                "intent_id": {
                    "type": "string"
                },
                "intent_name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "agent_routing": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer"
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "description": {
                    "type": "string"
                },
                "slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.slotSpecResp"
                    }
                }
            }
        },
        "http.turnResp": {
            "type": "object",
            "properties": {
                "user_input": {
                    "type": "string"
                },
                "intent": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2026-01-02T03:04:05.006Z"
                },
                "slots": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.SlotValue"
                    }
                },
                "multi_intents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "disambiguation_resolved": {
                    "type": "boolean"
                }
            }
        },
        "http.sessionResp": {
            "type": "object",
            "properties": {
                "conversation_id": {
                    "type": "string"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.turnResp"
                    }
                },
                "recent_intents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "slot_memory": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.SlotValue"
                    }
                },
                "pending_intents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "context_summary": {
                    "type": "string"
                }
            }
        },
        "http.pendingResp": {
            "type": "object",
            "properties": {
                "has_pending": {
                    "type": "boolean"
                },
                "intent": {
                    "type": "string"
                },
                "remaining_count": {
                    "type": "integer"
                }
            }
        },
        "model.Candidate": {
            "type": "object",
            "properties": {
                "intent": {
                    "type": "string"
                },
                "intent_id": {
                    "type": "string"
                },
                "agent": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                }
            }
        },
        "model.DisambiguationOption": {
            "type": "object",
            "properties": {
                "option_number": {
                    "type": "integer"
                },
                "intent": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "agent": {
                    "type": "string"
                }
            }
        },
        "model.DisambiguationOffer": {
            "type": "object",
            "properties": {
                "needed": {
                    "type": "boolean"
                },
                "reason": {
                    "type": "string"
                },
                "confidence_gap": {
                    "type": "number"
                },
                "prompt": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.DisambiguationOption"
                    }
                },
                "original_utterance": {
                    "type": "string"
                }
            }
        },
        "model.Intent": {
            "type": "object",
            "properties": {
                "intent_id": {
                    "type": "string"
                },
                "intent_name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "agent_routing": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer"
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "model.MissingSlot": {
            "type": "object",
            "properties": {
                "slot_name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "prompt": {
                    "type": "string"
                }
            }
        },
        "model.SlotValue": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number"
                },
                "source": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Intent Router API",
	Description:      "Embedding-based intent classification and routing for member-services conversations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
