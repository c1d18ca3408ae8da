package dto

import "github.com/google/uuid"

type ResumeCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
