package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/repository"
	"github.com/fadilmartias/resume-matcher/internal/response"
)

const (
	defaultPageNo   = 1
	defaultPageSize = 10
)

var ErrInvalidPagination = errors.New("page_no and page_size must be positive integers.")

type JobUsecase struct {
	jobRepo repository.JobRepositoryInterface
}

func NewJobUsecase(jobRepo repository.JobRepositoryInterface) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

func (uc *JobUsecase) Paginate(ctx context.Context, req dto.PaginatedJobsRequest) (*response.JobPage, error) {
	pageNo, pageSize := defaultPageNo, defaultPageSize
	if req.PageNo.Set {
		pageNo = req.PageNo.Value
	}
	if req.PageSize.Set {
		pageSize = req.PageSize.Value
	}
	if pageNo <= 0 || pageSize <= 0 {
		return nil, ErrInvalidPagination
	}

	page := &response.JobPage{
		Jobs:     []dto.JobItem{},
		PageNo:   pageNo,
		PageSize: pageSize,
	}

	// An offset that does not fit an int is necessarily past the end.
	if pageNo-1 > math.MaxInt/pageSize {
		return page, nil
	}
	offset := (pageNo - 1) * pageSize

	jobs, err := uc.jobRepo.GetJobsPage(ctx, offset, pageSize)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		page.Jobs = append(page.Jobs, dto.JobItem{
			ID:          j.ID,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Description: j.Description,
		})
	}
	return page, nil
}
