package parser

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/resumeparse/backend/models"
)

// Extractor turns free-form resume text into a loose JSON object using an
// external model. Implementations report failure with an error; the Service
// converts every failure into the degraded record, so callers never see one.
type Extractor interface {
	Extract(ctx context.Context, text string) (map[string]any, error)
}

// textPayloadKeys is the priority order for locating free-form resume text
// inside structured input.
var textPayloadKeys = [...]string{"raw_text", "text", "resume", "content"}

// structuralKeys mark input that is already shaped data and only needs
// normalization, not extraction.
var structuralKeys = [...]string{"skills", "experience", "education", "projects"}

// Service is the dispatch entry point for resume parsing. It is stateless;
// concurrent calls are independent.
type Service struct {
	extractor Extractor
}

// NewService creates a parsing service. A nil extractor is valid and means
// every extraction attempt yields the degraded record.
func NewService(extractor Extractor) *Service {
	return &Service{extractor: extractor}
}

// Parse accepts raw resume input (text or a JSON document, nullable) and
// always returns a well-shaped record. Input is never rejected: malformed
// JSON is treated as free-form text.
func (s *Service) Parse(ctx context.Context, rawText *string) models.ResumeRecord {
	if rawText == nil {
		return models.EmptyRecord()
	}

	obj, ok := decodeObject(*rawText)
	if !ok {
		return s.extract(ctx, *rawText)
	}

	if payload, found := findTextPayload(obj); found {
		return s.extract(ctx, payload)
	}

	if hasStructuralKey(obj) {
		return models.EnsureShape(obj)
	}

	// Nothing recognizable in the object: attempt extraction on the
	// original input as given
	return s.extract(ctx, *rawText)
}

func (s *Service) extract(ctx context.Context, text string) models.ResumeRecord {
	if s.extractor == nil {
		log.Printf("[Parser] no extraction backend configured, returning degraded result")
		return models.DegradedRecord()
	}

	obj, err := s.extractor.Extract(ctx, text)
	if err != nil {
		log.Printf("[Parser] extraction failed: %v", err)
		return models.DegradedRecord()
	}

	return models.EnsureShape(obj)
}

// decodeObject reports whether the input parses as a JSON object. Parse
// failures and non-object results are not errors, just "not structured".
func decodeObject(input string) (map[string]any, bool) {
	var value any
	if err := json.Unmarshal([]byte(input), &value); err != nil {
		return nil, false
	}
	obj, ok := value.(map[string]any)
	return obj, ok
}

// Recursion bound for text payload discovery over untrusted input
const maxSearchDepth = 32

// findTextPayload searches a decoded object depth-first for a non-empty
// string under the priority keys: directly, inside a nested object, or
// inside a list element (string or object).
func findTextPayload(obj map[string]any) (string, bool) {
	return searchTextPayload(obj, 0)
}

func searchTextPayload(obj map[string]any, depth int) (string, bool) {
	if depth >= maxSearchDepth {
		return "", false
	}

	for _, key := range textPayloadKeys {
		value, ok := obj[key]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v, true
			}
		case map[string]any:
			if nested, found := searchTextPayload(v, depth+1); found {
				return nested, true
			}
		case []any:
			for _, item := range v {
				switch element := item.(type) {
				case map[string]any:
					if nested, found := searchTextPayload(element, depth+1); found {
						return nested, true
					}
				case string:
					if strings.TrimSpace(element) != "" {
						return element, true
					}
				}
			}
		}
	}

	return "", false
}

func hasStructuralKey(obj map[string]any) bool {
	for _, key := range structuralKeys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}
