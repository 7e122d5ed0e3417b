package watch

import (
	"encoding/json"
	"time"
)

const (
	routeIndex     = "/"
	routeFlattened = "/flattened"
	routeStatus    = "/status"
	routeEvents    = "/events"
	routeWebSocket = "/ws"
)

const sseEventFlatten = "flatten"

// flattenSnapshot is the payload of SSE "flatten" events: the outcome of flattening
// one delivered compilation result.
type flattenSnapshot struct {
	Revision  uint64    `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Flattened string    `json:"flattened,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func (s flattenSnapshot) encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
