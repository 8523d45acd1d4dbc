// Package docs holds the Swagger document served at /swagger/*.
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
		"/api/auth/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.User"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/challenges": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Create a challenge",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createChallengeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Challenge"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/challenges/daily": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Today's challenge",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Challenge"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/challenges/community": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Community challenge previews",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.CommunityChallenge"
							}
						}
					}
				}
			}
		},
		"/api/challenges/community/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Community challenge",
				"parameters": [
					{
						"type": "integer",
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Challenge"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/challenges/generate-theme": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Suggest a challenge theme",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ChallengeTheme"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/challenges/from-theme": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Create a challenge from a generated theme",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handler.challengeFromThemeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Challenge"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/challenges/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Challenge by id",
				"parameters": [
					{
						"type": "integer",
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Challenge"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			},
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"challenges"
				],
				"summary": "Update a challenge",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.updateChallengeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Challenge"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/panels": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"panels"
				],
				"summary": "Panels of a challenge, by position",
				"parameters": [
					{
						"type": "integer",
						"description": "Challenge ID",
						"name": "challengeId",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.Panel"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"panels"
				],
				"summary": "Add a panel as the current user",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createPanelRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Panel"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/panels/generate": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"panels"
				],
				"summary": "Generate panel artwork",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.generatePanelRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.generatePanelResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/panels/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"panels"
				],
				"summary": "Panel by id",
				"parameters": [
					{
						"type": "integer",
						"description": "Panel ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Panel"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/panels/{id}/voted": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"panels"
				],
				"summary": "Whether the current user voted for a panel",
				"parameters": [
					{
						"type": "integer",
						"description": "Panel ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.votedResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/votes": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"votes"
				],
				"summary": "Vote for a panel as the current user",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createVoteRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Vote"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/captions/suggest": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"captions"
				],
				"summary": "Suggest a caption for a prompt",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.suggestCaptionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.suggestCaptionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/api/storyboards/completed": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"storyboards"
				],
				"summary": "Recently completed storyboards",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.CompletedStoryboard"
							}
						}
					}
				}
			}
		},
		"/api/storyboards/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"storyboards"
				],
				"summary": "Storyboard by challenge id",
				"parameters": [
					{
						"type": "integer",
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.CompletedStoryboard"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"avatarColor": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"domain.Challenge": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"type": "string"
				},
				"totalPanels": {
					"type": "integer"
				},
				"panelCount": {
					"type": "integer"
				},
				"contributors": {
					"type": "integer"
				},
				"coverImage": {
					"type": "string"
				},
				"timeRemaining": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				},
				"endedAt": {
					"type": "string"
				},
				"isDaily": {
					"type": "boolean"
				},
				"createdBy": {
					"type": "integer"
				},
				"category": {
					"type": "string"
				},
				"daysLeft": {
					"type": "integer"
				}
			}
		},
		"domain.CommunityChallenge": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"coverImage": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"contributors": {
					"type": "integer"
				},
				"daysLeft": {
					"type": "integer"
				}
			}
		},
		"domain.ChallengeTheme": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"category": {
					"type": "string"
				}
			}
		},
		"domain.Panel": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"challengeId": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"prompt": {
					"type": "string"
				},
				"caption": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"votes": {
					"type": "integer"
				},
				"position": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				},
				"username": {
					"type": "string"
				}
			}
		},
		"domain.Vote": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"panelId": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"domain.CompletedStoryboard": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"coverImage": {
					"type": "string"
				},
				"panelCount": {
					"type": "integer"
				},
				"completedAt": {
					"type": "string"
				},
				"contributors": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handler.createChallengeRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"totalPanels": {
					"type": "integer"
				},
				"coverImage": {
					"type": "string"
				},
				"isDaily": {
					"type": "boolean"
				},
				"category": {
					"type": "string"
				}
			},
			"required": [
				"category",
				"description",
				"tags",
				"title"
			]
		},
		"handler.updateChallengeRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"type": "string"
				},
				"totalPanels": {
					"type": "integer"
				},
				"coverImage": {
					"type": "string"
				},
				"timeRemaining": {
					"type": "integer"
				},
				"endedAt": {
					"type": "string"
				},
				"isDaily": {
					"type": "boolean"
				},
				"category": {
					"type": "string"
				},
				"daysLeft": {
					"type": "integer"
				}
			}
		},
		"handler.challengeFromThemeRequest": {
			"type": "object",
			"properties": {
				"totalPanels": {
					"type": "integer"
				},
				"isDaily": {
					"type": "boolean"
				}
			}
		},
		"handler.createPanelRequest": {
			"type": "object",
			"properties": {
				"challengeId": {
					"type": "integer"
				},
				"prompt": {
					"type": "string"
				},
				"caption": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				}
			},
			"required": [
				"challengeId",
				"imageUrl",
				"prompt"
			]
		},
		"handler.generatePanelRequest": {
			"type": "object",
			"properties": {
				"prompt": {
					"type": "string"
				},
				"challengeId": {
					"type": "integer"
				}
			},
			"required": [
				"challengeId",
				"prompt"
			]
		},
		"handler.generatePanelResponse": {
			"type": "object",
			"properties": {
				"imageUrl": {
					"type": "string"
				}
			}
		},
		"handler.createVoteRequest": {
			"type": "object",
			"properties": {
				"panelId": {
					"type": "integer"
				}
			},
			"required": [
				"panelId"
			]
		},
		"handler.suggestCaptionRequest": {
			"type": "object",
			"properties": {
				"prompt": {
					"type": "string"
				}
			},
			"required": [
				"prompt"
			]
		},
		"handler.suggestCaptionResponse": {
			"type": "object",
			"properties": {
				"caption": {
					"type": "string"
				}
			}
		},
		"handler.votedResponse": {
			"type": "object",
			"properties": {
				"voted": {
					"type": "boolean"
				}
			}
		},
		"handler.messageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo can be adjusted at startup, for example to set Host.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storyboard API",
	Description:      "Collaborative comic storyboard challenges: panels, votes and generated artwork.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
