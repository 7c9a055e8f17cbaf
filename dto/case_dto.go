package dto

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
)

type APICase struct {
	Id          string    `json:"id"`
	CaseNumber  string    `json:"case_number"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	LawyerId    string    `json:"lawyer_id"`
	ClientId    string    `json:"client_id"`
	JudgeId     *string   `json:"judge_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptCaseDto(c models.Case) APICase {
	return APICase{
		Id:          c.Id,
		CaseNumber:  c.CaseNumber,
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		LawyerId:    c.LawyerId,
		ClientId:    c.ClientId,
		JudgeId:     c.JudgeId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CreateCaseBody struct {
	CaseNumber  string  `json:"case_number"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	LawyerId    string  `json:"lawyer_id" binding:"required,uuid"`
	ClientId    string  `json:"client_id" binding:"required,uuid"`
	JudgeId     *string `json:"judge_id" binding:"omitempty,uuid"`
}

type UpdateCaseStatusBody struct {
	Status string `json:"status" binding:"required"`
}
