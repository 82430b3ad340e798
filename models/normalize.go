package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EnsureShape coerces a loosely-typed JSON object into the canonical
// ResumeRecord. It is total: any input, including nil, yields a well-shaped
// record. Wrong-typed fields are corrected silently, never reported.
func EnsureShape(obj map[string]any) ResumeRecord {
	rec := EmptyRecord()
	if obj == nil {
		return rec
	}

	if name, ok := obj["name"].(string); ok {
		rec.Name = name
	}
	if email, ok := obj["email"].(string); ok {
		rec.Email = email
	}

	// Skills: every element is stringified regardless of original type
	if skills, ok := obj["skills"].([]any); ok {
		for _, skill := range skills {
			rec.Skills = append(rec.Skills, stringify(skill))
		}
	}

	// Experience/education/projects: non-object elements are dropped,
	// object elements rebuilt field-by-field with empty-string defaults
	if entries, ok := obj["experience"].([]any); ok {
		for _, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			rec.Experience = append(rec.Experience, Experience{
				Company: stringField(m, "company"),
				Role:    stringField(m, "role"),
				Years:   stringField(m, "years"),
			})
		}
	}

	if entries, ok := obj["education"].([]any); ok {
		for _, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			rec.Education = append(rec.Education, Education{
				Degree:      stringField(m, "degree"),
				Institution: stringField(m, "institution"),
				Years:       stringField(m, "years"),
			})
		}
	}

	if entries, ok := obj["projects"].([]any); ok {
		for _, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			project := Project{
				Name:        stringField(m, "name"),
				Description: stringField(m, "description"),
				Tech:        []string{},
			}
			if tech, ok := m["tech"].([]any); ok {
				for _, t := range tech {
					project.Tech = append(project.Tech, stringify(t))
				}
			}
			rec.Projects = append(rec.Projects, project)
		}
	}

	return rec
}

// stringField reads a key from a loose object and coerces it to a string.
// Absent or null values default to the empty string.
func stringField(m map[string]any, key string) string {
	value, ok := m[key]
	if !ok {
		return ""
	}
	return stringify(value)
}

// stringify renders a decoded JSON value as a string. Numbers keep their
// shortest representation (no trailing ".0" for integral floats); composite
// values are re-serialized as JSON.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case json.Number:
		return value.String()
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(data)
	}
}
