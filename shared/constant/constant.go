package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	CustomIDPrefixAdmin = "ADMIN"
	CustomIDPrefixUser  = "USER"
)

const (
	BookingStatusActive    = "Active"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID         = "id"
	RequestParamIdentifier = "identifier"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339

	// TimeFormatLocalDateTime is the zone-less ISO-8601 layout the frontend
	// sends for booking start times, e.g. "2023-10-27T10:00:00".
	TimeFormatLocalDateTime = "2006-01-02T15:04:05"
)

const (
	DefaultUserName    = "New User"
	FallbackLoginName  = "User"
	EmailIndicatorChar = "@"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelHTTPScopeName       = "http"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ResponseMsgLoginSuccess       = "Login successful"
	ResponseMsgInvalidCredentials = "Invalid credentials"
	ResponseMsgRegisterSuccess    = "User registered successfully"
	ResponseMsgEmailInUse         = "Email already in use"
	ResponseMsgBookingConfirmed   = "Booking confirmed!"
	ResponseMsgBookingCancelled   = "Booking cancelled"
	ResponseMsgUserNotFound       = "User not found"
	ResponseMsgBookingNotFound    = "Booking not found"
	ResponseMsgInvalidTimeFormat  = "Invalid time format"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
