package service

import (
	"encoding/json"
	"fmt"
)

// ValidationError carries field-keyed messages for a rejected request. It is
// never fatal; the triggering operation is aborted and prior state is kept.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	raw, err := json.Marshal(e.Fields)
	if err != nil {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", raw)
}
