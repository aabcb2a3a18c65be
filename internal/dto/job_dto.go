package dto

import (
	"time"

	"github.com/google/uuid"

	"web3jobs/internal/model"
)

type JobRequest struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	CompanyLogo     string   `json:"company_logo"`
	Location        string   `json:"location"`
	SalaryRange     string   `json:"salary_range"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Experience      string   `json:"experience"`
	Skills          []string `json:"skills"`
	ApplicationLink string   `json:"application_link"`
	ContactEmail    string   `json:"contact_email"`
	Published       bool     `json:"published"`
}

type VerifyRequest struct {
	Status string `json:"status"`
}

type JobDTO struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	CompanyLogo        *string   `json:"company_logo"`
	Location           string    `json:"location"`
	SalaryRange        *string   `json:"salary_range"`
	Description        string    `json:"description"`
	Type               string    `json:"type"`
	TypeLabel          string    `json:"type_label"`
	Category           string    `json:"category"`
	CategoryLabel      string    `json:"category_label"`
	Experience         string    `json:"experience"`
	ExperienceLabel    string    `json:"experience_label"`
	Skills             []string  `json:"skills"`
	ApplicationLink    *string   `json:"application_link"`
	ContactEmail       *string   `json:"contact_email"`
	UserID             uuid.UUID `json:"user_id"`
	Published          bool      `json:"published"`
	VerificationStatus string    `json:"verification_status"`
	CanApply           bool      `json:"can_apply"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
}

func NewJobDTO(j *model.Job) JobDTO {
	skills := []string(j.Skills)
	if skills == nil {
		skills = []string{}
	}
	return JobDTO{
		ID:                 j.ID,
		Title:              j.Title,
		Company:            j.Company,
		CompanyLogo:        j.CompanyLogo,
		Location:           j.Location,
		SalaryRange:        j.SalaryRange,
		Description:        j.Description,
		Type:               string(j.Type),
		TypeLabel:          model.JobTypeLabels[j.Type],
		Category:           string(j.Category),
		CategoryLabel:      model.CategoryLabels[j.Category],
		Experience:         string(j.Experience),
		ExperienceLabel:    model.ExperienceLabels[j.Experience],
		Skills:             skills,
		ApplicationLink:    j.ApplicationLink,
		ContactEmail:       j.ContactEmail,
		UserID:             j.UserID,
		Published:          j.Published,
		VerificationStatus: string(j.VerificationStatus),
		CanApply:           j.CanApply(),
		CreatedAt:          j.CreatedAt,
		ExpiresAt:          j.ExpiresAt,
	}
}

func NewJobDTOs(jobs []model.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobDTO(&jobs[i]))
	}
	return out
}
