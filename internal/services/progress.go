package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// ParseLearningProgress decodes a stored learning progress string. Only a
// JSON object is accepted.
func ParseLearningProgress(raw string) (datatypes.JSONMap, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return datatypes.JSONMap{}, nil
	}
	var out datatypes.JSONMap
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return datatypes.JSONMap{}, fmt.Errorf("learning progress is not a JSON object: %w", err)
	}
	if out == nil {
		return datatypes.JSONMap{}, fmt.Errorf("learning progress is null")
	}
	return out, nil
}
