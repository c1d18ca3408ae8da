package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatchPrompt(t *testing.T) {
	prompt := BuildMatchPrompt("RESUME {\"x\": 1}", "JOB %s")

	assert.Contains(t, prompt, "Resume:\nRESUME {\"x\": 1}\n")
	assert.Contains(t, prompt, "Job Description:\nJOB %s\n")
	for _, field := range []string{"rank", "skills", "total_experience", "project_category", "missing_skills", "improvement_suggestions"} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
	assert.Less(t, strings.Index(prompt, "Resume:"), strings.Index(prompt, "Job Description:"))
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("Senior Go engineer at Acme")

	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Senior Go engineer at Acme"))
	for _, field := range []string{"title", "description", "salary", "experienceLevel", "location", "jobType", "requirements", "company"} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
	assert.Contains(t, prompt, "Do not invent data")
}
