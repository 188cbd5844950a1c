package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meur/gemwiki/internal/models"
)

// LoadPlan reads a YAML group plan. Unknown keys are rejected so a typo in a
// hand-edited plan fails before any record is touched.
func LoadPlan(path string) (models.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Plan{}, fmt.Errorf("failed to read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes a plan document
func ParsePlan(data []byte) (models.Plan, error) {
	var plan models.Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return models.Plan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	if _, err := plan.Assignments(); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}
