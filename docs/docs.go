// Package docs holds the swagger specification served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "List students",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "Students retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "Create a student",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStudentRequest"}}],
                "responses": {
                    "201": {"description": "Student created successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "Get student by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Student retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/{id}/results": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["students", "results"],
                "summary": "List a student's results",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Results retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/students/{id}/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["standing"],
                "summary": "Student dashboard",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Dashboard retrieved successfully", "schema": {"$ref": "#/definitions/dto.DashboardResponse"}}}
            }
        },
        "/adviser/students/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["standing"],
                "summary": "Adviser view of a student dashboard",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Dashboard retrieved successfully", "schema": {"$ref": "#/definitions/dto.DashboardResponse"}}}
            }
        },
        "/students/{id}/eligibility/{courseId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["standing"],
                "summary": "Course eligibility",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "courseId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "Eligibility resolved", "schema": {"$ref": "#/definitions/dto.EligibilityResponse"}}}
            }
        },
        "/students/{id}/ask": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["advisor"],
                "summary": "Ask the advisor",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.AskRequest"}}
                ],
                "responses": {"200": {"description": "Answer", "schema": {"$ref": "#/definitions/dto.AskResponse"}}}
            }
        },
        "/students/{id}/advisor/ws": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["advisor", "websocket"],
                "summary": "Open an advisor chat session",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"101": {"description": "Switching Protocols to WebSocket"}}
            }
        },
        "/courses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {"200": {"description": "Courses retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "Create a course",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCourseRequest"}}],
                "responses": {"201": {"description": "Course created successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/courses/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "Get course by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Course retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/courses/{id}/prerequisites": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "List prerequisites",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Prerequisites retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "Add a prerequisite",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePrerequisiteRequest"}}
                ],
                "responses": {"201": {"description": "Prerequisite added successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/semesters": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["semesters"],
                "summary": "List semesters",
                "responses": {"200": {"description": "Semesters retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["semesters"],
                "summary": "Create a semester",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSemesterRequest"}}],
                "responses": {"201": {"description": "Semester created successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/results": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["results"],
                "summary": "List results",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "Results retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["results"],
                "summary": "Record a result",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateResultRequest"}}],
                "responses": {"201": {"description": "Result recorded successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok"}, "503": {"description": "Record store unavailable"}}
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "severity": {"type": "string"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.CreateStudentRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "enrollmentYear", "level"],
            "properties": {
                "firstName": {"type": "string", "example": "John"},
                "lastName": {"type": "string", "example": "Doe"},
                "email": {"type": "string", "example": "john@uni.edu"},
                "enrollmentYear": {"type": "integer", "example": 2023},
                "level": {"type": "integer", "example": 300},
                "password": {"type": "string"}
            }
        },
        "dto.CreateCourseRequest": {
            "type": "object",
            "required": ["code", "name", "credits", "semesterOffered"],
            "properties": {
                "code": {"type": "string", "example": "CSC201"},
                "name": {"type": "string", "example": "Data Structures"},
                "credits": {"type": "integer", "example": 3},
                "semesterOffered": {"type": "integer", "enum": [1, 2]},
                "department": {"type": "string"}
            }
        },
        "dto.CreatePrerequisiteRequest": {
            "type": "object",
            "required": ["requiredCourseId"],
            "properties": {"requiredCourseId": {"type": "integer", "example": 2}}
        },
        "dto.CreateSemesterRequest": {
            "type": "object",
            "required": ["name", "startDate", "endDate"],
            "properties": {
                "name": {"type": "string", "example": "Year 1 Sem 1"},
                "startDate": {"type": "string", "example": "2023-01-01T00:00:00Z"},
                "endDate": {"type": "string", "example": "2023-05-01T00:00:00Z"}
            }
        },
        "dto.CreateResultRequest": {
            "type": "object",
            "required": ["studentId", "courseId", "semesterId", "grade", "gradePoint"],
            "properties": {
                "studentId": {"type": "integer", "example": 1},
                "courseId": {"type": "integer", "example": 2},
                "semesterId": {"type": "integer", "example": 1},
                "grade": {"type": "string", "example": "B"},
                "gradePoint": {"type": "number", "example": 3.0},
                "credits": {"type": "integer", "example": 3}
            }
        },
        "dto.EligibilityResponse": {
            "type": "object",
            "properties": {
                "courseId": {"type": "integer"},
                "courseCode": {"type": "string", "example": "CSC201"},
                "status": {"type": "string", "enum": ["Blocked", "Eligible", "Completed"]},
                "reason": {"type": "string", "example": "Missing prerequisites: CSC101"},
                "missing": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "student": {"type": "object"},
                "cumulative": {"type": "object"},
                "semesters": {"type": "array", "items": {"type": "object"}},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/dto.EligibilityResponse"}}
            }
        },
        "dto.AskRequest": {
            "type": "object",
            "required": ["question"],
            "properties": {"question": {"type": "string", "example": "Why can't I take CSC499?"}}
        },
        "dto.AskResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "intent": {"type": "string", "enum": ["course_eligibility", "improve_performance", "fallback"]},
                "courseCode": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Academic Advisory API",
	Description:      "Student performance, course eligibility and rule-based academic advice",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
