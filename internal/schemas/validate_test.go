package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `{
	"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com", "phone": "1", "location": "London"},
	"summary": "Mathematician",
	"experience": [{"id": "e1", "jobTitle": "Analyst", "company": "Engine", "location": "London", "startDate": "1842", "isCurrentJob": true, "description": "Notes"}],
	"skills": [{"id": "s1", "name": "Algorithms", "category": "CS", "level": "Expert"}, {"id": "s2", "name": "Poetry", "category": "Arts"}]
}`

func TestValidateJSONString(t *testing.T) {
	schema := `{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))

	err := ValidateJSONString(schema, `{"name": 1}`)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "name", verr.Errors[0].Field)

	err = ValidateJSONString(schema, `{}`)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "(root)", verr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestValidateResumeJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "sample resume", input: sampleResume},
		{name: "empty object", input: `{}`},
		{name: "unknown top-level key", input: `{"hobbies": []}`, wantErr: true},
		{name: "entity without id", input: `{"experience": [{"jobTitle": "Dev"}]}`, wantErr: true},
		{name: "empty id", input: `{"projects": [{"id": ""}]}`, wantErr: true},
		{name: "bad skill level", input: `{"skills": [{"id": "s", "level": "Guru"}]}`, wantErr: true},
		{name: "flag as string", input: `{"education": [{"id": "d", "isCurrentStudy": "yes"}]}`, wantErr: true},
		{name: "unknown entity field", input: `{"certificates": [{"id": "c", "score": "1"}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeResume(t *testing.T) {
	r, err := DecodeResume([]byte(sampleResume))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", r.PersonalInfo.FullName)
	assert.True(t, r.Experience[0].IsCurrentJob)
	assert.Equal(t, types.LevelExpert, r.Skills[0].Level)
	assert.Equal(t, types.LevelIntermediate, r.Skills[1].Level)
	assert.NotNil(t, r.Education)
	assert.Empty(t, r.Education)
	assert.NotNil(t, r.Certificates)
}

func TestDecodeResume_DuplicateIDs(t *testing.T) {
	input := `{"skills": [{"id": "s"}, {"id": "t"}, {"id": "s"}], "projects": [{"id": "s"}]}`

	_, err := DecodeResume([]byte(input))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "skills.2.id", verr.Errors[0].Field)
}

func TestLoadResume(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o600))

	r, err := LoadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Mathematician", r.Summary)

	_, err = LoadResume(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestResumeSchemaIsEmbedded(t *testing.T) {
	assert.Contains(t, ResumeSchema(), `"personalInfo"`)
}
