package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Health Management API",
        "description": "Vaccination campaigns, disease records and student health data",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Diseases", "description": "Disease reference data"},
        {"name": "DiseaseRecords", "description": "Student illness records"},
        {"name": "Vaccines", "description": "Vaccine catalogue"},
        {"name": "Campaigns", "description": "Vaccination campaigns and eligibility"},
        {"name": "Registrations", "description": "Campaign registrations and consent"},
        {"name": "Vaccinations", "description": "Vaccination records"},
        {"name": "Exports", "description": "Asynchronous data exports"}
    ],
    "paths": {
        "/vaccine": {
            "post": {
                "tags": ["Vaccines"],
                "summary": "Create vaccine",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateVaccineRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Disease not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Duplicate name", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/campaign": {
            "post": {
                "tags": ["Campaigns"],
                "summary": "Create vaccination campaign",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCampaignRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Vaccine not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Overlapping campaign", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/campaigns": {
            "get": {
                "tags": ["Campaigns"],
                "summary": "List campaigns",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/student-eligible-for-campaign/{campaignId}": {
            "get": {
                "tags": ["Campaigns"],
                "summary": "List students eligible for a campaign",
                "parameters": [
                    {"name": "campaignId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "No eligible students", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/register-request": {
            "post": {
                "tags": ["Registrations"],
                "summary": "Fan registrations out to eligible students",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"campaignId": {"type": "string"}}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/register-request/{id}": {
            "patch": {
                "tags": ["Registrations"],
                "summary": "Set parental consent",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"confirmed": {"type": "boolean"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Outside campaign window", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/pre-vaccination-record/{id}": {
            "post": {
                "tags": ["Registrations"],
                "summary": "Stage pre-vaccination records",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "No confirmed registrations", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/vaccination-record": {
            "post": {
                "tags": ["Vaccinations"],
                "summary": "Create vaccination record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateVaccinationRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/vaccination-record/{id}": {
            "get": {
                "tags": ["Vaccinations"],
                "summary": "Get vaccination record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "patch": {
                "tags": ["Vaccinations"],
                "summary": "Partially update vaccination record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateVaccinationRecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/vaccination-records/{studentId}": {
            "get": {
                "tags": ["Vaccinations"],
                "summary": "List a student's vaccination records",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/disease": {
            "post": {
                "tags": ["Diseases"],
                "summary": "Create disease",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DiseaseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/diseases": {
            "get": {
                "tags": ["Diseases"],
                "summary": "List diseases",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/disease/{id}": {
            "put": {
                "tags": ["Diseases"],
                "summary": "Update disease",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DiseaseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Diseases"],
                "summary": "Delete disease",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/disease-record": {
            "post": {
                "tags": ["DiseaseRecords"],
                "summary": "Create disease record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DiseaseRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/disease-record/{id}": {
            "put": {
                "tags": ["DiseaseRecords"],
                "summary": "Update disease record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DiseaseRecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["DiseaseRecords"],
                "summary": "Delete disease record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/disease-records/{studentId}": {
            "get": {
                "tags": ["DiseaseRecords"],
                "summary": "List a student's disease records",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/disease-records/{studentId}/category/{category}": {
            "get": {
                "tags": ["DiseaseRecords"],
                "summary": "List a student's disease records by category",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "string"},
                    {"name": "category", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Invalid category", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue a vaccination-history export",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Get export job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/exports/download/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a finished export",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "403": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "CreateVaccineRequest": {
            "type": "object",
            "required": ["name", "description"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "CreateCampaignRequest": {
            "type": "object",
            "required": ["vaccineId", "startDate", "endDate"],
            "properties": {
                "vaccineId": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"}
            }
        },
        "CreateVaccinationRecordRequest": {
            "type": "object",
            "required": ["studentId", "name", "vaccinationDate", "status"],
            "properties": {
                "studentId": {"type": "string"},
                "registrationId": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "vaccinationDate": {"type": "string"},
                "status": {"type": "string"},
                "campaignId": {"type": "string"}
            }
        },
        "UpdateVaccinationRecordRequest": {
            "type": "object",
            "properties": {
                "registrationId": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "vaccinationDate": {"type": "string"},
                "status": {"type": "string"},
                "campaignId": {"type": "string"}
            }
        },
        "DiseaseRequest": {
            "type": "object",
            "required": ["name", "vaccineNeeded", "doseQuantity"],
            "properties": {
                "category": {"type": "string", "enum": ["chronic", "infectious", "common"]},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "vaccineNeeded": {"type": "boolean"},
                "doseQuantity": {"type": "integer"}
            }
        },
        "DiseaseRecordRequest": {
            "type": "object",
            "required": ["studentId", "diseaseId", "detectDate"],
            "properties": {
                "studentId": {"type": "string"},
                "diseaseId": {"type": "string"},
                "detectDate": {"type": "string"},
                "cureDate": {"type": "string"},
                "locationCure": {"type": "string"},
                "prescription": {"type": "string"},
                "diagnosis": {"type": "string"},
                "admissionDate": {"type": "string"},
                "dischargeDate": {"type": "string"},
                "curStatus": {"type": "string"},
                "atSchool": {"type": "boolean"}
            }
        },
        "ExportRequest": {
            "type": "object",
            "required": ["type", "studentId", "format"],
            "properties": {
                "type": {"type": "string", "enum": ["vaccination-records"]},
                "studentId": {"type": "string"},
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"type": "object"}
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
