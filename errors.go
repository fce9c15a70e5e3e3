package cfmodels

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// APIError is returned by the client when Contentful answers with an error
// status or cannot be reached at all. StatusCode is 0 for transport failures.
type APIError struct {
	StatusCode int
	ID         string
	Message    string
	RequestID  string
	Details    []ErrorDetail
	Err        error
}

// ErrorDetail is one entry of the details.errors list of an error response.
type ErrorDetail struct {
	Name    string      `mapstructure:"name"`
	Path    interface{} `mapstructure:"path"`
	Details string      `mapstructure:"details"`
	Value   interface{} `mapstructure:"value"`
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("contentful: %s", e.Message)
	}
	if e.ID != "" {
		return fmt.Sprintf("contentful: %d %s: %s", e.StatusCode, e.ID, e.Message)
	}
	return fmt.Sprintf("contentful: %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// DetailList formats Details one line per entry.
func (e *APIError) DetailList() []string {
	list := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts := make([]string, 0, 4)
		if d.Name != "" {
			parts = append(parts, d.Name)
		}
		if d.Path != nil {
			parts = append(parts, fmt.Sprintf("path=%v", d.Path))
		}
		if d.Value != nil {
			parts = append(parts, fmt.Sprintf("value=%v", d.Value))
		}
		if d.Details != "" {
			parts = append(parts, d.Details)
		}
		list = append(list, strings.Join(parts, " "))
	}
	return list
}

type errorResponse struct {
	Sys       *Sys                   `json:"sys,omitempty"`
	Message   string                 `json:"message,omitempty"`
	RequestID string                 `json:"requestId,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

func decodeErrorDetails(details map[string]interface{}) []ErrorDetail {
	raw, ok := details["errors"]
	if !ok {
		return nil
	}
	var list []ErrorDetail
	if err := mapstructure.Decode(raw, &list); err != nil {
		return []ErrorDetail{{Details: fmt.Sprintf("%v", raw)}}
	}
	return list
}
