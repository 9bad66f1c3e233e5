package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "LMS Go API",
        "description": "Learning management backend: dashboard, courses, grades and assignments",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication and session management"},
        {"name": "Dashboard", "description": "Student dashboard panels"},
        {"name": "Students", "description": "Enrollment-scoped course and section views"},
        {"name": "Grades", "description": "Grade views across sections"},
        {"name": "Assignments", "description": "Assignment lookup and submission"},
        {"name": "Schedule", "description": "Enrollment-derived schedule"},
        {"name": "Exports", "description": "Asynchronous transcript exports"}
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
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a user",
                "responses": {
                    "200": {"description": "Tokens", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a refresh token",
                "responses": {
                    "200": {"description": "Rotated tokens", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the active refresh token",
                "responses": {
                    "204": {"description": "Revoked"}
                }
            }
        },
        "/students/dashboard/statistics": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard summary counters",
                "parameters": [
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Counters", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing university_id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/dashboard/upcoming-tasks": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Pending tasks inside the deadline horizon",
                "parameters": [
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "days_ahead", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Tasks", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/dashboard/leaderboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Top students by points",
                "parameters": [
                    {"name": "top_n", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Entries", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/dashboard/activity-chart": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Monthly study and exam activity",
                "parameters": [
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "months_back", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Points", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/dashboard/grade-components": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Per-course component grades for the chart",
                "parameters": [
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Components", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/courses": {
            "get": {
                "tags": ["Students"],
                "summary": "Courses a student is enrolled in",
                "parameters": [
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Courses", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/courses/with-sections": {
            "get": {
                "tags": ["Students"],
                "summary": "Enrollment grouped as courses over sections",
                "parameters": [
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Courses with sections", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/course/{course_id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Course roster joined with student academics",
                "parameters": [
                    {"name": "course_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Students", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/course/{course_id}/detail": {
            "get": {
                "tags": ["Students"],
                "summary": "Course header for an enrolled student",
                "parameters": [
                    {"name": "course_id", "in": "path", "required": true, "type": "string"},
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Detail", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/section/{section_id}/{course_id}/{semester}/grades": {
            "get": {
                "tags": ["Students"],
                "summary": "Student grade row for one section",
                "parameters": [
                    {"name": "section_id", "in": "path", "required": true, "type": "string"},
                    {"name": "course_id", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "path", "required": true, "type": "string"},
                    {"name": "university_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Grade row, null components preserved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grades/user/{user_id}": {
            "get": {
                "tags": ["Grades"],
                "summary": "All grades for a student across sections",
                "parameters": [
                    {"name": "user_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Grades", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/user/{user_id}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Schedule for a student",
                "parameters": [
                    {"name": "user_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Schedule items", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments/{id}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Get assignment details by assignment or assessment id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "university_id", "in": "query", "type": "integer"},
                    {"name": "section_id", "in": "query", "type": "string"},
                    {"name": "course_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Assignment with resolved_by meta", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found under either id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments/{id}/submit": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Submit an assignment",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "file", "in": "formData", "type": "file"},
                    {"name": "comments", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Submission recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/transcript": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue a grade transcript export",
                "responses": {
                    "202": {"description": "Job queued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{job_id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Current state of an export job",
                "parameters": [
                    {"name": "job_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Job state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown job", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/download": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a rendered transcript via a signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
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
