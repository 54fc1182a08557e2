package suggest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func first(int) int { return 0 }

func last(n int) int { return n - 1 }

func TestStub_SuggestSummary(t *testing.T) {
	s := NewStub(WithoutDelay(), WithPicker(first))

	named, err := s.SuggestSummary(context.Background(), types.PersonalInfo{FullName: "Ada"})
	require.NoError(t, err)
	assert.Contains(t, named, "developing innovative solutions")

	anonymous, err := s.SuggestSummary(context.Background(), types.PersonalInfo{})
	require.NoError(t, err)
	assert.Contains(t, anonymous, "technology and business")
}

func TestStub_SuggestJobDescription(t *testing.T) {
	s := NewStub(WithoutDelay(), WithPicker(last))

	text, err := s.SuggestJobDescription(context.Background(), "Engineer", "Acme")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Drove the implementation"))
}

func TestStub_SuggestEducationDescription(t *testing.T) {
	tests := []struct {
		degree string
		pick   int
		want   string
	}{
		{"BSc Computer Science", 0, "algorithms, data structures"},
		{"History", 0, "core subject areas"},
		{"MBA Business Administration", 1, "strategic management"},
		{"Mechanical Engineering", 2, "engineering design projects"},
		{"Political Science", 3, "scientific research methodologies"},
	}

	for _, tt := range tests {
		t.Run(tt.degree, func(t *testing.T) {
			s := NewStub(WithoutDelay(), WithPicker(func(int) int { return tt.pick }))
			text, err := s.SuggestEducationDescription(context.Background(), tt.degree, "MIT")
			require.NoError(t, err)
			assert.Contains(t, text, tt.want)
		})
	}
}

func TestStub_SuggestSkills(t *testing.T) {
	tests := []struct {
		jobTitle  string
		wantFirst string
	}{
		{"Senior Software Engineer", "JavaScript"},
		{"Frontend developer", "JavaScript"},
		{"Data Analyst", "Python"},
		{"Research Scientist", "Python"},
		{"Product Manager", "Agile Methodology"},
		{"Project Lead", "Agile Methodology"},
		{"Chef", "Communication"},
		{"", "Communication"},
	}

	s := NewStub(WithoutDelay())
	for _, tt := range tests {
		t.Run(tt.jobTitle, func(t *testing.T) {
			skills, err := s.SuggestSkills(context.Background(), tt.jobTitle)
			require.NoError(t, err)
			require.Len(t, skills, 5)
			assert.Equal(t, tt.wantFirst, skills[0].Name)
			for _, sk := range skills {
				assert.True(t, sk.Level.Valid())
				assert.NotEmpty(t, sk.Category)
			}
		})
	}
}

func TestStub_SuggestSkillsReturnsCopy(t *testing.T) {
	s := NewStub(WithoutDelay())

	skills, err := s.SuggestSkills(context.Background(), "Chef")
	require.NoError(t, err)
	skills[0].Name = "changed"

	again, err := s.SuggestSkills(context.Background(), "Chef")
	require.NoError(t, err)
	assert.Equal(t, "Communication", again[0].Name)
}

func TestStub_ImproveText(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind TextKind
		want string
	}{
		{
			name: "adds verb and metric",
			text: "Worked on the billing system",
			kind: KindExperience,
			want: "Spearheaded worked on the billing system, resulting in 25% improvement in efficiency",
		},
		{
			name: "keeps existing verb",
			text: "Built the billing system",
			kind: KindExperience,
			want: "Built the billing system, resulting in 25% improvement in efficiency",
		},
		{
			name: "keeps existing metric",
			text: "Managed a team of 12+ engineers",
			kind: KindExperience,
			want: "Managed a team of 12+ engineers",
		},
		{
			name: "summary unchanged",
			text: "Engineer who likes Go",
			kind: KindSummary,
			want: "Engineer who likes Go",
		},
		{
			name: "blank unchanged",
			text: "   ",
			kind: KindExperience,
			want: "   ",
		},
	}

	s := NewStub(WithoutDelay(), WithPicker(first))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ImproveText(context.Background(), tt.text, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStub_LatencyHonoursCancellation(t *testing.T) {
	s := NewStub(WithDelays(Delays{Summary: time.Hour}))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.SuggestSummary(ctx, types.PersonalInfo{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "summary", serr.Operation)
	assert.Less(t, time.Since(start), time.Second)
}

func TestStub_CanceledContextWithoutDelay(t *testing.T) {
	s := NewStub(WithoutDelay())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SuggestSkills(ctx, "Engineer")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStub_DefaultPickerStaysInRange(t *testing.T) {
	s := NewStub(WithoutDelay())
	for range 50 {
		text, err := s.SuggestJobDescription(context.Background(), "", "")
		require.NoError(t, err)
		assert.Contains(t, jobDescriptionPool, text)
	}
}

func TestParseTextKind(t *testing.T) {
	k, err := ParseTextKind("education")
	require.NoError(t, err)
	assert.Equal(t, KindEducation, k)

	_, err = ParseTextKind("cover-letter")
	assert.Error(t, err)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "élan", lowerFirst("Élan"))
	assert.Equal(t, "", lowerFirst(""))
}
