package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"web3jobs/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// ListQuery holds the optional equality constraints the backing query
// supports. Nil means unconstrained. Results are always newest-first.
type ListQuery struct {
	Published          *bool
	VerificationStatus *model.VerificationStatus
	UserID             *uuid.UUID
}

func (r *JobRepository) List(q ListQuery) ([]model.Job, error) {
	var jobs []model.Job
	tx := r.db.Model(&model.Job{})
	if q.Published != nil {
		tx = tx.Where("published = ?", *q.Published)
	}
	if q.VerificationStatus != nil {
		tx = tx.Where("verification_status = ?", *q.VerificationStatus)
	}
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}
	err := tx.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

// Delete is a hard removal; there is no tombstone.
func (r *JobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Job{}, "id = ?", id).Error
}
