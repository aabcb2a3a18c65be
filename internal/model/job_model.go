package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JobType string

const (
	JobTypeFullTime  JobType = "full-time"
	JobTypeFreelance JobType = "freelance"
)

type JobCategory string

const (
	CategoryBlockchainDevelopment JobCategory = "blockchain-development"
	CategorySmartContracts        JobCategory = "smart-contracts"
	CategoryFrontend              JobCategory = "frontend"
	CategoryBackend               JobCategory = "backend"
	CategoryDesign                JobCategory = "design"
	CategoryProduct               JobCategory = "product"
	CategoryMarketing             JobCategory = "marketing"
	CategoryBusiness              JobCategory = "business"
	CategoryLegal                 JobCategory = "legal"
	CategoryCommunity             JobCategory = "community"
	CategoryOther                 JobCategory = "other"
)

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Display labels keyed by the persisted enum values. The keys are part of
// stored records and must round-trip unchanged.
var JobTypeLabels = map[JobType]string{
	JobTypeFullTime:  "Full-time",
	JobTypeFreelance: "Freelance",
}

var CategoryLabels = map[JobCategory]string{
	CategoryBlockchainDevelopment: "Blockchain Development",
	CategorySmartContracts:        "Smart Contracts",
	CategoryFrontend:              "Frontend Development",
	CategoryBackend:               "Backend Development",
	CategoryDesign:                "Design",
	CategoryProduct:               "Product",
	CategoryMarketing:             "Marketing",
	CategoryBusiness:              "Business",
	CategoryLegal:                 "Legal",
	CategoryCommunity:             "Community",
	CategoryOther:                 "Other",
}

var ExperienceLabels = map[ExperienceLevel]string{
	ExperienceEntry:  "Entry Level",
	ExperienceMid:    "Mid Level",
	ExperienceSenior: "Senior Level",
	ExperienceLead:   "Lead / Management",
}

func (t JobType) Valid() bool {
	_, ok := JobTypeLabels[t]
	return ok
}

func (c JobCategory) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

func (e ExperienceLevel) Valid() bool {
	_, ok := ExperienceLabels[e]
	return ok
}

func (s VerificationStatus) Valid() bool {
	return s == VerificationPending || s == VerificationApproved || s == VerificationRejected
}

type Job struct {
	ID                 uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title              string             `json:"title"`
	Company            string             `json:"company"`
	CompanyLogo        *string            `json:"company_logo"`
	Location           string             `json:"location"`
	SalaryRange        *string            `json:"salary_range"`
	Description        string             `gorm:"type:text" json:"description"`
	Type               JobType            `gorm:"type:varchar(20)" json:"type"`
	Category           JobCategory        `gorm:"type:varchar(50)" json:"category"`
	Experience         ExperienceLevel    `gorm:"type:varchar(20)" json:"experience"`
	Skills             pq.StringArray     `gorm:"type:text[]" json:"skills"`
	ApplicationLink    *string            `json:"application_link"`
	ContactEmail       *string            `json:"contact_email"`
	UserID             uuid.UUID          `gorm:"type:uuid;index" json:"user_id"`
	Published          bool               `json:"published"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	ExpiresAt          time.Time          `json:"expires_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// PubliclyVisible reports whether a posting may appear in listings for
// viewers who are neither the owner nor an admin. Published alone is not
// enough: a posting that has not passed moderation stays hidden.
func (j *Job) PubliclyVisible() bool {
	return j.Published && j.VerificationStatus == VerificationApproved
}

// CanApply reports whether the posting carries at least one apply
// affordance (external link or contact email).
func (j *Job) CanApply() bool {
	return (j.ApplicationLink != nil && *j.ApplicationLink != "") ||
		(j.ContactEmail != nil && *j.ContactEmail != "")
}
