package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamStatus = "status"
	RequestParamSearch = "search"
)

const (
	RequestParamID     = "id"
	RequestParamSlotID = "slotId"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	ClockFormat    = "15:04"
	ClockFormatSec = "15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	ResponseHeaderRedirect          = "X-Redirect"
)

const (
	ContentTypeJSON = "application/json"
	BearerPrefix    = "Bearer "
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	MessageSessionExpired = "Session expired. Please log in again."
	MessageRateLimited    = "Too many requests. Please wait a moment and try again."
	MessageNetworkError   = "Unable to reach the server. Check your connection and try again."
	LoginPath             = "/login"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
