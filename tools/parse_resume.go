package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumeparse/backend/models"
	"github.com/resumeparse/backend/parser"
)

// ParseResumeTool normalizes resume content into the canonical record
type ParseResumeTool struct {
	service *parser.Service
}

// NewParseResumeTool creates the resume parsing tool
func NewParseResumeTool(service *parser.Service) *ParseResumeTool {
	return &ParseResumeTool{
		service: service,
	}
}

func (t *ParseResumeTool) Name() string {
	return "parse_resume"
}

func (t *ParseResumeTool) Description() string {
	return `Parse resume JSON/text into structured skills, experience, education, and projects.
Input may be raw resume text, a JSON document containing the text, or already-structured data.
Always returns the canonical record; a "missing" marker signals that extraction was unavailable.`
}

func (t *ParseResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"raw_text": map[string]interface{}{
				"type":        []string{"string", "null"},
				"description": "The resume content to parse (raw text or a JSON dump)",
			},
		},
		"required": []string{"raw_text"},
	}
}

// ParseResumeInput represents the input for resume parsing
type ParseResumeInput struct {
	RawText *string `json:"raw_text"`
}

func (t *ParseResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var parseInput ParseResumeInput
	if err := json.Unmarshal(input, &parseInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	record := t.service.Parse(ctx, parseInput.RawText)
	return json.Marshal(record)
}

// ParseResume is a direct method for in-process callers
func (t *ParseResumeTool) ParseResume(ctx context.Context, rawText *string) models.ResumeRecord {
	return t.service.Parse(ctx, rawText)
}
