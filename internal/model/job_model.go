package model

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Company     string    `gorm:"type:varchar(255)" json:"company"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// MatchText is the job side of the match prompt.
func (j *Job) MatchText() string {
	return j.Title + "\n" + j.Company + "\n" + j.Location + "\n" + j.Description
}
