package client

import (
	"encoding/json"
)

// listEnvelope is the shape of every n8n list response.
type listEnvelope[T any] struct {
	Data       []T     `json:"data"`
	NextCursor *string `json:"nextCursor"`
}

// entity decodes single-resource answers that may or may not be wrapped in
// {"data": {...}} depending on the n8n version and endpoint.
type entity[T any] struct {
	Value *T
}

func (e *entity[T]) UnmarshalJSON(data []byte) error {
	var probe struct {
		ID   json.RawMessage `json:"id"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	payload := data
	if len(probe.ID) == 0 && len(probe.Data) > 0 && probe.Data[0] == '{' {
		payload = probe.Data
	}
	e.Value = new(T)
	return json.Unmarshal(payload, e.Value)
}

func cursorOf(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
