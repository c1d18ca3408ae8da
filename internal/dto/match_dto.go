package dto

type MatchResponse struct {
	Match string `json:"match"`
}

type GroqMatchRequest struct {
	ResumeID string `json:"resume_id"`
	JobID    string `json:"job_id"`
}
