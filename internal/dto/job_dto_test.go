package dto

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatedJobsRequest_Coercion(t *testing.T) {
	tests := []struct {
		body     string
		pageNo   PageParam
		pageSize PageParam
	}{
		{`{}`, PageParam{}, PageParam{}},
		{`{"page_no":2,"page_size":5}`, PageParam{2, true}, PageParam{5, true}},
		{`{"page_no":"2"}`, PageParam{2, true}, PageParam{}},
		{`{"page_no":" 3 "}`, PageParam{3, true}, PageParam{}},
		{`{"page_no":2.0}`, PageParam{2, true}, PageParam{}},
		{`{"page_no":2.7}`, PageParam{2, true}, PageParam{}},
		{`{"page_no":-1.5}`, PageParam{-1, true}, PageParam{}},
		{`{"page_no":true}`, PageParam{1, true}, PageParam{}},
		{`{"page_size":1e30}`, PageParam{}, PageParam{math.MaxInt, true}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req PaginatedJobsRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.pageNo, req.PageNo)
			assert.Equal(t, tt.pageSize, req.PageSize)
		})
	}
}

func TestPaginatedJobsRequest_Rejects(t *testing.T) {
	for _, body := range []string{
		`{"page_no":null}`,
		`{"page_size":null}`,
		`{"page_no":"two"}`,
		`{"page_no":"2.0"}`,
		`{"page_no":[2]}`,
		`{"page_no":{"v":2}}`,
	} {
		t.Run(body, func(t *testing.T) {
			var req PaginatedJobsRequest
			assert.Error(t, json.Unmarshal([]byte(body), &req))
		})
	}
}
