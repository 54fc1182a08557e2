package validation

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			FullName: "Grace Hopper",
			Email:    "grace@navy.mil",
			Phone:    "+1 555 0100",
			Location: "Arlington, VA",
		},
		Summary: "Computer scientist and rear admiral.",
		Experience: []types.Experience{{
			ID: "e1", JobTitle: "Programmer", Company: "Harvard", Location: "Cambridge, MA",
			StartDate: "1944-07", Description: "Programmed the Mark I.",
		}},
		Education: []types.Education{{
			ID: "d1", Degree: "PhD Mathematics", Institution: "Yale", Location: "New Haven, CT", StartDate: "1930",
		}},
		Skills: []types.Skill{{ID: "s1", Name: "COBOL", Category: "Languages", Level: types.LevelExpert}},
		Projects: []types.Project{{
			ID: "p1", Name: "FLOW-MATIC", Description: "English-like data processing language", Technologies: "UNIVAC I",
		}},
		Certificates: []types.Certificate{{ID: "c1", Name: "Distinguished Service", Issuer: "DoD", IssueDate: "1986"}},
	}
}

func fields(r Result) []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Field)
	}
	return out
}

func TestValidate_DefaultResumeReportsEveryRequiredField(t *testing.T) {
	result := Validate(types.DefaultResume())

	assert.False(t, result.Valid())
	assert.Equal(t, []string{
		"personalInfo.fullName",
		"personalInfo.email",
		"personalInfo.phone",
		"personalInfo.location",
		"summary",
	}, fields(result))

	msgs := result.Messages()
	assert.Equal(t, "Full name is required", msgs["personalInfo.fullName"])
	assert.Equal(t, "Email is required", msgs["personalInfo.email"])
	assert.Equal(t, "Phone number is required", msgs["personalInfo.phone"])
	assert.Equal(t, "Professional summary is required", msgs["summary"])
}

func TestValidate_DefaultEntitiesReportOnlyRequiredFields(t *testing.T) {
	r := validResume()
	r.Experience = append(r.Experience, types.DefaultExperience())
	r.Education = append(r.Education, types.DefaultEducation())
	r.Skills = append(r.Skills, types.DefaultSkill())
	r.Projects = append(r.Projects, types.DefaultProject())
	r.Certificates = append(r.Certificates, types.DefaultCertificate())

	result := Validate(r)

	assert.Equal(t, []string{
		"experience[1].jobTitle",
		"experience[1].company",
		"experience[1].location",
		"experience[1].startDate",
		"experience[1].description",
		"education[1].degree",
		"education[1].institution",
		"education[1].location",
		"education[1].startDate",
		"skills[1].name",
		"skills[1].category",
		"projects[1].name",
		"projects[1].description",
		"projects[1].technologies",
		"certificates[1].name",
		"certificates[1].issuer",
		"certificates[1].issueDate",
	}, fields(result))

	msgs := result.Messages()
	assert.Equal(t, "Job description is required", msgs["experience[1].description"])
	assert.Equal(t, "Institution is required", msgs["education[1].institution"])
	assert.Equal(t, "Skill name is required", msgs["skills[1].name"])
	assert.Equal(t, "Technologies used is required", msgs["projects[1].technologies"])
	assert.Equal(t, "Issue date is required", msgs["certificates[1].issueDate"])
}

func TestValidate_FullyPopulatedResumeIsValid(t *testing.T) {
	result := Validate(validResume())

	assert.True(t, result.Valid())
	assert.Empty(t, result.Violations)
	assert.NoError(t, result.Err())
}

func TestValidate_OptionalFieldsNeverReported(t *testing.T) {
	r := validResume()
	r.PersonalInfo.Website = ""
	r.Experience[0].EndDate = ""
	r.Education[0].GPA = ""
	r.Education[0].Description = ""
	r.Projects[0].URL = "not a url"
	r.Certificates[0].URL = "::"

	assert.True(t, Validate(r).Valid())
}

func TestValidate_DoesNotMutate(t *testing.T) {
	r := types.DefaultResume()
	r.Experience = append(r.Experience, types.DefaultExperience())
	before := r.Clone()

	_ = Validate(r)

	assert.Equal(t, before, r)
}

func TestValidate_Nil(t *testing.T) {
	result := Validate(nil)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, RootField, result.Violations[0].Field)
}

func TestValidate_InvalidSkillLevel(t *testing.T) {
	r := validResume()
	r.Skills[0].Level = "Guru"

	result := Validate(r)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "skills[0].level", result.Violations[0].Field)
	assert.Equal(t, "oneof", result.Violations[0].Rule)
	assert.Equal(t, "Skill level must be one of Beginner, Intermediate, Advanced, Expert", result.Violations[0].Message)
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"first.last@example.co.uk", true},
		{"user+tag@sub.domain.org", true},
		{"not-an-email", false},
		{"a@b", false},
		{"@example.com", false},
		{"a@", false},
		{"a@b.", false},
		{"a@.com", false},
		{"a b@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			r := validResume()
			r.PersonalInfo.Email = tt.email

			result := Validate(r)
			assert.Equal(t, tt.valid, result.Valid(), "violations: %v", result.Violations)
			assert.Equal(t, tt.valid, ValidEmail(tt.email))
			if !tt.valid {
				assert.Equal(t, "Invalid email address", result.Messages()["personalInfo.email"])
			}
		})
	}
}

func TestValidateEntity_RelativePaths(t *testing.T) {
	result := ValidateEntity(types.DefaultExperience())

	assert.Equal(t, []string{"jobTitle", "company", "location", "startDate", "description"}, fields(result))
	assert.Equal(t, "Company name is required", result.Messages()["company"])

	info := ValidateEntity(&types.PersonalInfo{FullName: "A", Email: "a@b", Phone: "1", Location: "X"})
	require.Len(t, info.Violations, 1)
	assert.Equal(t, "email", info.Violations[0].Field)
	assert.Equal(t, "Invalid email address", info.Violations[0].Message)
}

func TestValidateEntity_NotAStruct(t *testing.T) {
	result := ValidateEntity("hello")

	require.Len(t, result.Violations, 1)
	assert.Equal(t, RootField, result.Violations[0].Field)
}

func TestResult_Err(t *testing.T) {
	err := Validate(types.DefaultResume()).Err()
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 5)
	assert.Contains(t, err.Error(), "personalInfo.fullName: Full name is required")
}

func TestResult_Field(t *testing.T) {
	result := Validate(types.DefaultResume())

	assert.Len(t, result.Field("summary"), 1)
	assert.Empty(t, result.Field("personalInfo.website"))
}
