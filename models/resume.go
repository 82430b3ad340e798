package models

// ResumeRecord is the canonical structured output of resume parsing.
// The four list fields are always present in serialized output, never null.
type ResumeRecord struct {
	// Identity (only populated when the extraction model returns them)
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`

	// Missing marks a degraded result: extraction was requested but the
	// backend was unavailable or its reply was unusable. Empty on success.
	Missing string `json:"missing,omitempty"`
}

// Experience represents one work history entry
type Experience struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Years   string `json:"years"`
}

// Education represents one educational background entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Years       string `json:"years"`
}

// Project represents one project entry
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// EmptyRecord returns a canonical record with all list fields empty
func EmptyRecord() ResumeRecord {
	return ResumeRecord{
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
	}
}

// DegradedRecord returns the documented fallback when extraction cannot run.
// It keeps the four-list output contract and carries the sentinel marker.
func DegradedRecord() ResumeRecord {
	rec := EmptyRecord()
	rec.Missing = "gemini"
	return rec
}
