package service

import "fmt"

const MatchSystemPrompt = "You are a highly accurate and concise job matching assistant."

// BuildMatchPrompt embeds both texts verbatim. Nothing is escaped or
// sanitised, so résumé and job content reach the model as-is.
func BuildMatchPrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`
You are an advanced ATS (Applicant Tracking System) assistant specializing in software and IT jobs.
Read the resume and job description, then return a detailed JSON analysis with the following:

1. rank → Match score from 0–100 showing how well the resume fits the job.
2. skills → List of all hard (technical) and soft skills found in the resume.
3. total_experience → Total professional experience in years (approximate if needed).
4. project_category → Categories or domains of projects in the resume (e.g., AI, Web Development, Cloud, Data Science, Mobile Apps, etc.).
5. missing_skills → List of important skills in the job description that are not clearly mentioned in the resume.
6. improvement_suggestions → Actionable ways the candidate can improve the resume for better ATS and recruiter match rates.

Resume:
%s

Job Description:
%s

Respond ONLY with valid JSON in the exact structure below:
{
    "rank": <number>,
    "skills": ["skill1", "skill2", ...],
    "total_experience": <number>,
    "project_category": ["category1", "category2", ...],
    "missing_skills": ["skill1", "skill2", ...],
    "improvement_suggestions": ["suggestion1", "suggestion2", ...]
}
`, resumeText, jobText)
}

func BuildExtractionPrompt(jobDescription string) string {
	return fmt.Sprintf(`
You are an information extraction system.
Given a job description, return ONLY a valid JSON object with the following fields:

{
  "title": string,               // Exact official job title
  "description": string,         // Cleaned job description
  "salary": number,              // Minimum yearly salary if range exists, else 0
  "experienceLevel": number,     // 0 = Entry-level/Fresher, 1 = Mid-level, 2 = Senior
  "location": [string],          // Array of job locations
  "jobType": string,             // Example: "Full-time", "Part-time", "Internship", "Contract"
  "requirements": [string],      // Bullet points of qualifications/skills/experience
  "company": string              // Main company name
}

Rules:
- Do not invent data. If missing, leave as 0, empty string, or empty array.
- Output must be valid JSON only (starting with { and ending with }).
- Do not include metadata like ids, timestamps or application counts.
- Only return extracted values from the description.

Job Description:
%s
`, jobDescription)
}
