package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"career-compass/internal/domain/career"
)

const (
	predictionSystemPrompt = "You are an AI career counselor."
	detailSystemPrompt     = "You are an expert career counselor and learning path guide."
)

// predictionPrompt renders the profile into the instruction template. The
// stated JSON schema is part of the contract with the model; the extractor
// and payload structs depend on these exact field names.
func predictionPrompt(p career.Profile) string {
	var b strings.Builder

	b.WriteString("The user has the following profile:\n")
	fmt.Fprintf(&b, "UG Course: %s\n", p.UGCourse)
	fmt.Fprintf(&b, "UG Specialization: %s\n", p.UGSpecialization)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(&b, "Interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "UG CGPA: %s\n", floatField(p.UGCGPA))
	fmt.Fprintf(&b, "Certifications: %s\n", strings.Join(p.Certifications, ", "))
	fmt.Fprintf(&b, "Experience: %s years\n", intField(p.ExperienceYears))

	b.WriteString(`
Task:
Suggest 3 suitable career paths.
Return ONLY valid JSON in this format:
{
  "career_paths": [
    {
      "title": "string",
      "description": "string",
      "required_skills": ["string"],
      "roadmap": {
        "short_term": ["string"],
        "medium_term": ["string"],
        "long_term": ["string"]
      }
    }
  ]
}
`)
	return b.String()
}

func detailPrompt(careerName string) string {
	return fmt.Sprintf(`Task:
Provide a detailed breakdown for the career: %s.

The response must be ONLY valid JSON in this format:
{
  "career": %q,
  "required_skills": ["string"],
  "free_courses": [
    {
      "title": "string",
      "platform": "string",
      "url": "string"
    }
  ],
  "roadmap": {
    "short_term": ["string"],
    "medium_term": ["string"],
    "long_term": ["string"]
  }
}
`, careerName, careerName)
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func intField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
