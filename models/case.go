package models

import (
	"fmt"
	"time"
)

type Case struct {
	Id          string
	CaseNumber  string
	Title       string
	Description string
	Status      CaseStatus
	LawyerId    string
	ClientId    string
	JudgeId     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsParticipant reports whether the user is directly involved in the case.
// Judges are not listed here: their access is decided by role, not membership.
func (c Case) IsParticipant(userId string) bool {
	if c.LawyerId == userId || c.ClientId == userId {
		return true
	}
	return c.JudgeId != nil && *c.JudgeId == userId
}

type CaseStatus string

const (
	CaseOpen          CaseStatus = "open"
	CaseInProgress    CaseStatus = "in_progress"
	CaseOnHold        CaseStatus = "on_hold"
	CaseClosed        CaseStatus = "closed"
	CaseUnknownStatus CaseStatus = "unknown"
)

func CaseStatusFrom(s string) CaseStatus {
	switch CaseStatus(s) {
	case CaseOpen, CaseInProgress, CaseOnHold, CaseClosed:
		return CaseStatus(s)
	}
	return CaseUnknownStatus
}

func ValidateCaseStatus(status string) (CaseStatus, error) {
	sanitized := CaseStatusFrom(status)
	if sanitized == CaseUnknownStatus {
		return CaseUnknownStatus, fmt.Errorf("invalid case status: %s %w", status, BadParameterError)
	}
	return sanitized, nil
}

type CreateCaseAttributes struct {
	CaseNumber  string
	Title       string
	Description string
	LawyerId    string
	ClientId    string
	JudgeId     *string
}

type CaseFilters struct {
	Statuses      []CaseStatus
	ParticipantId string
}
