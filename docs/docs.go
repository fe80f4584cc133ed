// Package docs registers the OpenAPI document served under /docs. Keep it in
// line with the handler annotations by running go generate at the module root;
// TestDocsMatchRoutes fails when a route and its entry drift apart.
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
		"/api/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/events/{id}/forms": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"forms"
				],
				"summary": "List forms of an event",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Form"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"forms"
				],
				"summary": "Create a registration form",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"description": "Form definition",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateFormRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Form"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/events/{id}/forms/{formId}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"forms"
				],
				"summary": "Get a form with its submissions",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.FormDetailResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"forms"
				],
				"summary": "Update a form",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					},
					{
						"description": "Changes",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateFormRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Form"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"forms"
				],
				"summary": "Delete a form",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					}
				],
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
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/events/{id}/forms/{formId}/export": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"forms"
				],
				"summary": "Export submissions",
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/events/{id}/forms/{formId}/render": {
			"get": {
				"tags": [
					"submissions"
				],
				"summary": "Render a registration form",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					},
					{
						"type": "string",
						"name": "referralToken",
						"in": "query",
						"required": false,
						"description": "Token from /referrals/resolve"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/formrender.Plan"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/events/{id}/forms/{formId}/submit": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"submissions"
				],
				"summary": "Submit a registration",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					},
					{
						"description": "Answers and referral context",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SubmitRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SubmitResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/events/{id}/forms/{formId}/fields/{fieldId}/upload": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"submissions"
				],
				"summary": "Upload a file answer",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "formId",
						"in": "path",
						"required": true,
						"description": "Form ID"
					},
					{
						"type": "string",
						"name": "fieldId",
						"in": "path",
						"required": true,
						"description": "Field ID"
					},
					{
						"type": "file",
						"name": "file",
						"in": "formData",
						"required": true,
						"description": "File"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UploadResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/referrals/resolve": {
			"get": {
				"tags": [
					"referrals"
				],
				"summary": "Resolve a referral link",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "eventId",
						"in": "query",
						"required": true,
						"description": "Event ID"
					},
					{
						"type": "string",
						"name": "ref",
						"in": "query",
						"required": true,
						"description": "Referral code"
					},
					{
						"type": "string",
						"name": "tlId",
						"in": "query",
						"required": true,
						"description": "Technical lead ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ResolveReferralResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/technical-lead/referral-link": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"referrals"
				],
				"summary": "Get my referral link",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "eventId",
						"in": "query",
						"required": true,
						"description": "Event ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ReferralLinkResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/technical-lead/stats": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"referrals"
				],
				"summary": "My referral stats",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ReferralStats"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/technical-leads/{id}/stats": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"referrals"
				],
				"summary": "Referral stats of a technical lead",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Technical lead ID or email"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ReferralStats"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"field": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.LoginResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"accessToken": {
					"type": "string"
				},
				"expiresAt": {
					"type": "string"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"models.FileConstraints": {
			"type": "object",
			"properties": {
				"allowedExtensions": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"maxSizeMB": {
					"type": "number"
				}
			}
		},
		"models.Field": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"text",
						"email",
						"number",
						"select",
						"checkbox-single",
						"checkbox-multi",
						"file"
					]
				},
				"required": {
					"type": "boolean"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"fileConstraints": {
					"$ref": "#/definitions/models.FileConstraints"
				}
			}
		},
		"models.Form": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"eventId": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"fields": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Field"
					}
				},
				"createdBy": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.Answer": {
			"type": "object",
			"properties": {
				"fieldId": {
					"type": "string"
				},
				"value": {}
			}
		},
		"models.SubmissionWithUser": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"formId": {
					"type": "string"
				},
				"eventId": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"answers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Answer"
					}
				},
				"referredBy": {
					"type": "string"
				},
				"referredByName": {
					"type": "string"
				},
				"referralCode": {
					"type": "string"
				},
				"shortlisted": {
					"type": "boolean"
				},
				"checkedIn": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string"
				},
				"userName": {
					"type": "string"
				},
				"userEmail": {
					"type": "string"
				}
			}
		},
		"dto.FieldInput": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"required": {
					"type": "boolean"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"fileConstraints": {
					"$ref": "#/definitions/models.FileConstraints"
				}
			}
		},
		"dto.CreateFormRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"fields": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.FieldInput"
					}
				}
			}
		},
		"dto.UpdateFormRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"fields": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.FieldInput"
					}
				}
			}
		},
		"dto.FormDetailResponse": {
			"type": "object",
			"properties": {
				"form": {
					"$ref": "#/definitions/models.Form"
				},
				"submissions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.SubmissionWithUser"
					}
				}
			}
		},
		"dto.AnswerInput": {
			"type": "object",
			"properties": {
				"fieldId": {
					"type": "string"
				},
				"value": {}
			}
		},
		"dto.SubmitRequest": {
			"type": "object",
			"properties": {
				"answers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AnswerInput"
					}
				},
				"referredBy": {
					"type": "string"
				},
				"referredByName": {
					"type": "string"
				},
				"referralCode": {
					"type": "string"
				},
				"referralEventId": {
					"type": "string"
				},
				"referralToken": {
					"type": "string"
				}
			}
		},
		"dto.SubmitResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				}
			}
		},
		"dto.UploadResponse": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"url": {
					"type": "string"
				},
				"size": {
					"type": "integer"
				}
			}
		},
		"formrender.RenderedField": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"required": {
					"type": "boolean"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"fileConstraints": {
					"$ref": "#/definitions/models.FileConstraints"
				},
				"disabled": {
					"type": "boolean"
				}
			}
		},
		"formrender.Plan": {
			"type": "object",
			"properties": {
				"formId": {
					"type": "string"
				},
				"eventId": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"fields": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/formrender.RenderedField"
					}
				},
				"initialAnswers": {
					"type": "object",
					"additionalProperties": {}
				},
				"uploads": {
					"type": "object"
				}
			}
		},
		"dto.ReferralLinkResponse": {
			"type": "object",
			"properties": {
				"link": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"eventId": {
					"type": "string"
				}
			}
		},
		"dto.ResolveReferralResponse": {
			"type": "object",
			"properties": {
				"technicalLeadId": {
					"type": "string"
				},
				"technicalLeadName": {
					"type": "string"
				},
				"referralEventId": {
					"type": "string"
				},
				"referralCode": {
					"type": "string"
				},
				"referralToken": {
					"type": "string"
				},
				"expiresAt": {
					"type": "string"
				}
			}
		},
		"models.EventReferralCount": {
			"type": "object",
			"properties": {
				"eventId": {
					"type": "string"
				},
				"eventTitle": {
					"type": "string"
				},
				"count": {
					"type": "integer"
				}
			}
		},
		"models.RecentReferral": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userName": {
					"type": "string"
				},
				"userEmail": {
					"type": "string"
				},
				"eventId": {
					"type": "string"
				},
				"eventTitle": {
					"type": "string"
				},
				"formTitle": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"models.MonthlyCount": {
			"type": "object",
			"properties": {
				"month": {
					"type": "string"
				},
				"count": {
					"type": "integer"
				}
			}
		},
		"dto.ReferralStats": {
			"type": "object",
			"properties": {
				"totalReferrals": {
					"type": "integer"
				},
				"thisMonth": {
					"type": "integer"
				},
				"thisWeek": {
					"type": "integer"
				},
				"topEvents": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.EventReferralCount"
					}
				},
				"recentReferrals": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.RecentReferral"
					}
				},
				"monthlyBreakdown": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.MonthlyCount"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CTC Webbase API",
	Description:      "Event registration forms, submissions and technical-lead referrals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
