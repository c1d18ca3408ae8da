package dto

type ExtractJobRequest struct {
	Description string `json:"description"`
}

// ExtractedJobData is the shape the extraction prompt asks for. The handler
// returns whatever object the model produced, so this is documentation and a
// decode target for callers, not a validator.
type ExtractedJobData struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Salary          float64  `json:"salary"`
	ExperienceLevel int      `json:"experienceLevel"` // 0 entry, 1 mid, 2 senior
	Location        []string `json:"location"`
	JobType         string   `json:"jobType"`
	Requirements    []string `json:"requirements"`
	Company         string   `json:"company"`
}
