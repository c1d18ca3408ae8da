package response

import "github.com/fadilmartias/resume-matcher/internal/dto"

type JobPage struct {
	Jobs     []dto.JobItem `json:"jobs"`
	PageNo   int           `json:"page_no"`
	PageSize int           `json:"page_size"`
}
