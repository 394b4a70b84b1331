package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HIN Language Center Planner API",
        "description": "Weekly assignment planner service for the HIN Language Center LMS",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Planner", "description": "Drag-and-drop weekly assignment boards"},
        {"name": "Assignments", "description": "Assignment scope listing and due-date writes"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/planner/boards": {
            "post": {
                "tags": ["Planner"],
                "summary": "Open a planner board",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OpenBoardRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/boards/{id}": {
            "get": {
                "tags": ["Planner"],
                "summary": "Render a board",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "anchor", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Planner"],
                "summary": "Close a board",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/planner/boards/{id}/drops": {
            "post": {
                "tags": ["Planner"],
                "summary": "Drop an assignment onto a grid cell",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DropRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/boards/{id}/save": {
            "post": {
                "tags": ["Planner"],
                "summary": "Persist staged changes",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/boards/{id}/cancel": {
            "post": {
                "tags": ["Planner"],
                "summary": "Discard staged changes",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/boards/{id}/export": {
            "get": {
                "tags": ["Planner"],
                "summary": "Export the board as PDF or CSV",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "anchor", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments by scope",
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string"},
                    {"name": "studentId", "in": "query", "type": "string"},
                    {"name": "classIds", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments/{id}/due-date": {
            "patch": {
                "tags": ["Assignments"],
                "summary": "Replace an assignment's due date",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDueDateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "OpenBoardRequest": {
            "type": "object",
            "properties": {
                "variant": {"type": "string", "enum": ["STUDENT", "TEACHER", "CLASS"]},
                "class_id": {"type": "string"},
                "student_id": {"type": "string"},
                "class_ids": {"type": "array", "items": {"type": "string"}},
                "anchor": {"type": "string"}
            },
            "required": ["variant"]
        },
        "DropRequest": {
            "type": "object",
            "properties": {
                "assignment_id": {"type": "string"},
                "day": {"type": "string"},
                "hour": {"type": "string"},
                "source_day": {"type": "string"}
            },
            "required": ["day", "hour"]
        },
        "UpdateDueDateRequest": {
            "type": "object",
            "properties": {
                "due_date": {"type": "string"}
            },
            "required": ["due_date"]
        },
        "Chip": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "class_id": {"type": "string"},
                "due_date": {"type": "string"},
                "dirty": {"type": "boolean"}
            }
        },
        "BoardView": {
            "type": "object",
            "properties": {
                "board_id": {"type": "string"},
                "variant": {"type": "string"},
                "week": {"type": "array", "items": {"type": "string"}},
                "hours": {"type": "array", "items": {"type": "string"}},
                "cells": {"type": "object"},
                "bank": {"type": "array", "items": {"$ref": "#/definitions/Chip"}},
                "dirty_ids": {"type": "array", "items": {"type": "string"}},
                "saving": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
