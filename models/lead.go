package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id             uuid.UUID
	OrganizationId string
	Name           string
	CreatedAt      time.Time
}

// IntakeSubmission is the structured intake attached to a lead. Answers is the
// raw answer map as submitted by the form collaborator; the engine normalizes
// it into a FactRecord on every evaluation.
type IntakeSubmission struct {
	Id             uuid.UUID
	LeadId         uuid.UUID
	LineOfBusiness string
	Answers        map[string]any
	SubmittedAt    time.Time
}
