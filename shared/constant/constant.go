package constant

import (
	"time"
)

const (
	RequestParamID      = "id"
	RequestParamGuestID = "guestId"
	RequestParamRoomID  = "roomId"
	RequestParamStatus  = "status"
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	BookingDateFmt = "2006-01-02"
)

const (
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderRequestID    = "X-Request-ID"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	Asterix = "*"
	Empty   = ""
)
