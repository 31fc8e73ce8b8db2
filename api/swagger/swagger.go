package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Attendance Tracker API",
        "description": "Per-subject lecture attendance with aggregate statistics",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Subjects", "description": "Courses whose lectures are tracked"},
        {"name": "Attendance", "description": "Daily lecture tallies per subject"},
        {"name": "Analytics", "description": "Aggregate attendance statistics"},
        {"name": "System", "description": "Service probes"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["System"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RootResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Subject"}}}
                }
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Subject"}},
                    "400": {"description": "Empty name", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "422": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/subjects/{id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Get subject by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Subject"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "422": {"description": "Non-integer id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject and its attendance records",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "parameters": [
                    {"name": "subject_id", "in": "query", "type": "integer"},
                    {"name": "start_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "end_date", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/AttendanceRecord"}}},
                    "422": {"description": "Malformed query", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Create or overwrite the record for a subject and day",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/AttendanceRecord"}},
                    "400": {"description": "Invalid counts", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Unknown subject", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "422": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/attendance/export": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Download attendance records",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "subject_id", "in": "query", "type": "integer"},
                    {"name": "start_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "end_date", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "422": {"description": "Malformed query or format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/analytics": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Overall and per-subject attendance statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OverallStats"}}
                }
            }
        }
    },
    "definitions": {
        "RootResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateSubjectRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 255}
            }
        },
        "UpsertAttendanceRequest": {
            "type": "object",
            "required": ["subject_id", "date", "total_lectures", "attended_lectures"],
            "properties": {
                "subject_id": {"type": "integer"},
                "date": {"type": "string", "format": "date"},
                "total_lectures": {"type": "integer", "minimum": 0},
                "attended_lectures": {"type": "integer", "minimum": 0}
            }
        },
        "AttendanceRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "subject_id": {"type": "integer"},
                "subject_name": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "total_lectures": {"type": "integer"},
                "attended_lectures": {"type": "integer"},
                "absent_lectures": {"type": "integer"}
            }
        },
        "SubjectStats": {
            "type": "object",
            "properties": {
                "subject_id": {"type": "integer"},
                "subject_name": {"type": "string"},
                "total_conducted": {"type": "integer"},
                "total_attended": {"type": "integer"},
                "total_absent": {"type": "integer"},
                "attendance_percentage": {"type": "number"}
            }
        },
        "OverallStats": {
            "type": "object",
            "properties": {
                "total_subjects": {"type": "integer"},
                "total_conducted": {"type": "integer"},
                "total_attended": {"type": "integer"},
                "total_absent": {"type": "integer"},
                "overall_percentage": {"type": "number"},
                "subject_stats": {"type": "array", "items": {"$ref": "#/definitions/SubjectStats"}}
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
        "ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "error": {"$ref": "#/definitions/APIError"}
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
