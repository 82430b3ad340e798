package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func TestEnsureShapeNilInput(t *testing.T) {
	rec := EnsureShape(nil)
	assert.Equal(t, EmptyRecord(), rec)
}

func TestEnsureShapeAllFieldsAlwaysPresent(t *testing.T) {
	rec := EnsureShape(map[string]any{})

	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Projects)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[],"experience":[],"education":[],"projects":[]}`, string(data))
}

func TestEnsureShapeTypeMismatchCorrected(t *testing.T) {
	obj := decodeObject(t, `{"skills": ["Go"], "experience": "not-a-list"}`)

	rec := EnsureShape(obj)

	assert.Equal(t, []string{"Go"}, rec.Skills)
	assert.Empty(t, rec.Experience)
	assert.NotNil(t, rec.Experience)
}

func TestEnsureShapeDropsNonObjectElements(t *testing.T) {
	obj := decodeObject(t, `{
		"experience": [{"company": "Acme"}, "junk", 42, null],
		"education": ["nope", {"degree": "BSc"}],
		"projects": [17, {"name": "Cool App"}]
	}`)

	rec := EnsureShape(obj)

	require.Len(t, rec.Experience, 1)
	assert.Equal(t, Experience{Company: "Acme", Role: "", Years: ""}, rec.Experience[0])

	require.Len(t, rec.Education, 1)
	assert.Equal(t, Education{Degree: "BSc"}, rec.Education[0])

	require.Len(t, rec.Projects, 1)
	assert.Equal(t, "Cool App", rec.Projects[0].Name)
	assert.Equal(t, []string{}, rec.Projects[0].Tech)
}

func TestEnsureShapeStringifiesScalars(t *testing.T) {
	obj := decodeObject(t, `{
		"skills": ["Go", 5, true, null, {"nested": 1}],
		"experience": [{"company": "Acme", "role": 123, "years": 2020}]
	}`)

	rec := EnsureShape(obj)

	assert.Equal(t, []string{"Go", "5", "true", "", `{"nested":1}`}, rec.Skills)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "123", rec.Experience[0].Role)
	assert.Equal(t, "2020", rec.Experience[0].Years)
}

func TestEnsureShapeTechSubList(t *testing.T) {
	obj := decodeObject(t, `{
		"projects": [
			{"name": "A", "tech": ["React", 2]},
			{"name": "B", "tech": "not-a-list"}
		]
	}`)

	rec := EnsureShape(obj)

	require.Len(t, rec.Projects, 2)
	assert.Equal(t, []string{"React", "2"}, rec.Projects[0].Tech)
	assert.Equal(t, []string{}, rec.Projects[1].Tech)
}

func TestEnsureShapeIdentityFields(t *testing.T) {
	obj := decodeObject(t, `{"name": "John Doe", "email": "john@example.com", "skills": []}`)

	rec := EnsureShape(obj)

	assert.Equal(t, "John Doe", rec.Name)
	assert.Equal(t, "john@example.com", rec.Email)
}

func TestEnsureShapeIdempotent(t *testing.T) {
	original := decodeObject(t, `{
		"name": "Jane",
		"skills": ["Go", "Python"],
		"experience": [{"company": "Acme Inc", "role": "Engineer", "years": "2020-2023"}],
		"education": [{"degree": "BSc", "institution": "XYZ University", "years": "2016-2020"}],
		"projects": [{"name": "Cool App", "description": "Built X", "tech": ["React"]}]
	}`)

	first := EnsureShape(original)

	data, err := json.Marshal(first)
	require.NoError(t, err)
	second := EnsureShape(decodeObject(t, string(data)))

	assert.Equal(t, first, second)
}
