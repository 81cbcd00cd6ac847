package usecase

import (
	"strings"
	"testing"

	"career-compass/internal/domain/career"
)

func TestPredictionPrompt_InterpolatesProfile(t *testing.T) {
	cgpa := 8.2
	years := 3
	p := career.Profile{
		UGCourse:         "B.Sc Physics",
		UGSpecialization: "Astrophysics",
		Skills:           []string{"Python", "MATLAB"},
		Interests:        []string{"data", "research"},
		UGCGPA:           &cgpa,
		Certifications:   []string{"ML Specialization"},
		ExperienceYears:  &years,
	}

	got := predictionPrompt(p)

	for _, want := range []string{
		"UG Course: B.Sc Physics",
		"UG Specialization: Astrophysics",
		"Skills: Python, MATLAB",
		"Interests: data, research",
		"UG CGPA: 8.2",
		"Certifications: ML Specialization",
		"Experience: 3 years",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestPredictionPrompt_StatesSchema(t *testing.T) {
	got := predictionPrompt(career.Profile{UGCourse: "BCA"})

	for _, want := range []string{
		"Return ONLY valid JSON",
		`"career_paths"`,
		`"required_skills"`,
		`"short_term"`,
		`"medium_term"`,
		`"long_term"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing schema element %q", want)
		}
	}
}

func TestDetailPrompt_NamesCareerAndSchema(t *testing.T) {
	got := detailPrompt("DevOps Engineer")

	if !strings.Contains(got, "the career: DevOps Engineer.") {
		t.Fatalf("prompt missing career name:\n%s", got)
	}
	for _, want := range []string{`"career"`, `"free_courses"`, `"platform"`, `"roadmap"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing schema element %q", want)
		}
	}
}
