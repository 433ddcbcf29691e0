package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "VTU Notes API",
        "description": "Course notes portal: grade calculator, curriculum index, note catalog and admin uploads",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Calculator", "description": "SGPA/CGPA grade calculator"},
        {"name": "Curriculum", "description": "Static branch/semester/subject index"},
        {"name": "Notes", "description": "Uploaded note catalog"},
        {"name": "Selections", "description": "Per-session note selection sets"},
        {"name": "Auth", "description": "Login, signup and token refresh"},
        {"name": "Admin", "description": "Uploads, stats and exports"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/calculator/sgpa": {
            "post": {
                "tags": ["Calculator"],
                "summary": "Compute SGPA from credit/grade rows",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SGPARequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calculator/cgpa": {
            "post": {
                "tags": ["Calculator"],
                "summary": "Compute CGPA from SGPA/credit rows",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CGPARequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calculator/grades": {
            "get": {
                "tags": ["Calculator"],
                "summary": "List the grade letter to point mapping",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calculator/template": {
            "get": {
                "tags": ["Calculator"],
                "summary": "Look up a scheme/branch/semester subject template",
                "parameters": [
                    {"name": "scheme", "in": "query", "type": "string"},
                    {"name": "branch", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/branches": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "List branch categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/branches/{category}": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "Get one branch category",
                "parameters": [
                    {"name": "category", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown category", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/branches/{category}/semesters/{semester}": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "List subjects for a category and semester",
                "parameters": [
                    {"name": "category", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/subjects/{code}": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "Get a subject's note groups",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown subject", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/subjects/{code}/groups/{group}/download": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "Download a note group or one of its modules",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"},
                    {"name": "group", "in": "path", "required": true, "type": "integer"},
                    {"name": "module", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "202": {"description": "Coming soon notice", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Upstream fetch failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/first-year/schemes": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "List first-year schemes and cycles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curriculum/first-year/{scheme}/{cycle}": {
            "get": {
                "tags": ["Curriculum"],
                "summary": "List first-year subjects for a scheme and cycle",
                "parameters": [
                    {"name": "scheme", "in": "path", "required": true, "type": "string"},
                    {"name": "cycle", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List catalog notes with filters and facets",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "branch", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer"},
                    {"name": "university", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/{id}/download": {
            "get": {
                "tags": ["Notes"],
                "summary": "Redirect to a note's file and count the download",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "302": {"description": "Redirect to file"},
                    "404": {"description": "Unknown note", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/{id}/preview": {
            "get": {
                "tags": ["Notes"],
                "summary": "Redirect to a note's file without counting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "302": {"description": "Redirect to file"},
                    "404": {"description": "Unknown note", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/bulk-download": {
            "post": {
                "tags": ["Notes"],
                "summary": "Download selected notes as one ZIP archive",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkDownloadRequest"}}
                ],
                "responses": {
                    "200": {"description": "ZIP stream"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/selections/{session}": {
            "get": {
                "tags": ["Selections"],
                "summary": "Get the session's selection set",
                "parameters": [
                    {"name": "session", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Selections"],
                "summary": "Empty the session's selection set",
                "parameters": [
                    {"name": "session", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/selections/{session}/toggle": {
            "post": {
                "tags": ["Selections"],
                "summary": "Toggle a note in the session's selection set",
                "parameters": [
                    {"name": "session", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleSelectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email taken", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current refresh token",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Get the authenticated user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/notes": {
            "post": {
                "tags": ["Admin"],
                "summary": "Upload a note file with metadata",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "university", "in": "formData", "required": true, "type": "string"},
                    {"name": "branch", "in": "formData", "required": true, "type": "string"},
                    {"name": "subject", "in": "formData", "required": true, "type": "string"},
                    {"name": "semester", "in": "formData", "required": true, "type": "integer"},
                    {"name": "module", "in": "formData", "type": "string"},
                    {"name": "description", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "415": {"description": "Unsupported file type", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["Admin"],
                "summary": "Catalog totals and recent uploads",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/exports/csv": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export the catalog as CSV",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "CSV stream"}
                }
            }
        },
        "/admin/exports/pdf": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export the catalog as PDF",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "PDF stream"}
                }
            }
        }
    },
    "definitions": {
        "SGPARequest": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/GradeRow"}
                }
            },
            "required": ["rows"]
        },
        "GradeRow": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "credits": {"type": "integer"},
                "grade": {"type": "string"}
            },
            "required": ["credits", "grade"]
        },
        "CGPARequest": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SemesterRow"}
                }
            },
            "required": ["rows"]
        },
        "SemesterRow": {
            "type": "object",
            "properties": {
                "sgpa": {"type": "number"},
                "credits": {"type": "integer"}
            },
            "required": ["sgpa", "credits"]
        },
        "BulkDownloadRequest": {
            "type": "object",
            "properties": {
                "note_ids": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["note_ids"]
        },
        "ToggleSelectionRequest": {
            "type": "object",
            "properties": {
                "note_id": {"type": "string"}
            },
            "required": ["note_id"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "SignupRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["full_name", "email", "password"]
        },
        "RefreshRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            },
            "required": ["refresh_token"]
        },
        "Note": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "subject": {"type": "string"},
                "module": {"type": "string"},
                "branch": {"type": "string"},
                "semester": {"type": "integer"},
                "university": {"type": "string"},
                "description": {"type": "string"},
                "file_url": {"type": "string"},
                "file_name": {"type": "string"},
                "file_type": {"type": "string"},
                "file_size": {"type": "integer"},
                "download_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
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
                "pagination": {"type": "object"},
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
