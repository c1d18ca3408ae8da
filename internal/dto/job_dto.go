package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type PaginatedJobsRequest struct {
	PageNo   PageParam `json:"page_no"`
	PageSize PageParam `json:"page_size"`
}

// PageParam is a pagination number that clients send loosely: 2, 2.0 and
// "2" all mean page 2, fractions are truncated and booleans count as 0 or 1.
// Set stays false when the key is absent; an explicit null is rejected.
type PageParam struct {
	Value int
	Set   bool
}

func (p *PageParam) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty pagination value")
	}

	switch b[0] {
	case 'n':
		return fmt.Errorf("pagination value must not be null")
	case 't':
		p.Value, p.Set = 1, true
		return nil
	case 'f':
		p.Value, p.Set = 0, true
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid pagination value %q", s)
		}
		p.Value, p.Set = v, true
		return nil
	case '[', '{':
		return fmt.Errorf("pagination value must be a number")
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid pagination value %s", b)
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt:
		p.Value = math.MaxInt
	case f <= math.MinInt:
		p.Value = math.MinInt
	default:
		p.Value = int(f)
	}
	p.Set = true
	return nil
}

type JobItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}
