// Package dto provides data transfer objects for the request journal API.
package dto

import (
	"encoding/json"
	"time"

	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

// RequestLogResponse represents a journal entry in API responses. Request and response
// data are embedded as JSON when present.
type RequestLogResponse struct {
	ID           string          `json:"id"`
	RequestID    string          `json:"request_id"`
	Method       string          `json:"method"`
	Path         string          `json:"path"`
	RequestData  json.RawMessage `json:"request_data,omitempty"`
	ResponseData json.RawMessage `json:"response_data,omitempty"`
	StatusCode   int             `json:"status_code"`
	UserAgent    string          `json:"user_agent"`
	ClientIP     string          `json:"client_ip"`
	DurationMs   int64           `json:"duration_ms"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MapRequestLogToResponse converts a domain request log to an API response.
func MapRequestLogToResponse(log *requestLogDomain.RequestLog) RequestLogResponse {
	return RequestLogResponse{
		ID:           log.ID.String(),
		RequestID:    log.RequestID,
		Method:       log.Method,
		Path:         log.Path,
		RequestData:  rawJSON(log.RequestData),
		ResponseData: rawJSON(log.ResponseData),
		StatusCode:   log.StatusCode,
		UserAgent:    log.UserAgent,
		ClientIP:     log.ClientIP,
		DurationMs:   log.DurationMs,
		CreatedAt:    log.CreatedAt,
	}
}

// ListRequestLogsResponse represents a paginated list of journal entries.
type ListRequestLogsResponse struct {
	Data []RequestLogResponse `json:"data"`
}

// MapRequestLogsToListResponse converts domain request logs to a list API response.
func MapRequestLogsToListResponse(logs []*requestLogDomain.RequestLog) ListRequestLogsResponse {
	responses := make([]RequestLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, MapRequestLogToResponse(log))
	}
	return ListRequestLogsResponse{Data: responses}
}

func rawJSON(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return nil
	}
	return json.RawMessage(s)
}
