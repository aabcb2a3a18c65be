package usecase

import (
	"errors"
	"log"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"web3jobs/internal/apperror"
	"web3jobs/internal/filter"
	"web3jobs/internal/model"
	"web3jobs/internal/repository"
)

type JobRepositoryInterface interface {
	List(q repository.ListQuery) ([]model.Job, error)
	FindByID(id uuid.UUID) (*model.Job, error)
	Create(job *model.Job) error
	Update(job *model.Job) error
	Delete(id uuid.UUID) error
}

type NotifierInterface interface {
	NotifyJobSubmitted(job *model.Job) error
}

type JobUsecase struct {
	jobRepo  JobRepositoryInterface
	notifier NotifierInterface
}

func NewJobUsecase(jobRepo JobRepositoryInterface, notifier NotifierInterface) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, notifier: notifier}
}

// DefaultListingLifetime is how long a new posting stays live before its
// expiry date.
const DefaultListingLifetime = 30 * 24 * time.Hour

// JobInput carries the owner-editable fields of a posting.
type JobInput struct {
	Title           string
	Company         string
	CompanyLogo     string
	Location        string
	SalaryRange     string
	Description     string
	Type            model.JobType
	Category        model.JobCategory
	Experience      model.ExperienceLevel
	Skills          []string
	ApplicationLink string
	ContactEmail    string
	Published       bool
}

// ListPublic returns the postings any visitor may see, reduced by the
// filter spec. Only published postings that passed moderation are fetched;
// the filter runs in memory over that newest-first slice.
func (uc *JobUsecase) ListPublic(spec filter.Spec) ([]model.Job, error) {
	published := true
	approved := model.VerificationApproved
	jobs, err := uc.jobRepo.List(repository.ListQuery{
		Published:          &published,
		VerificationStatus: &approved,
	})
	if err != nil {
		return nil, apperror.Transient("failed to load job listings", err)
	}
	return filter.Apply(jobs, spec), nil
}

// ListOwned returns every posting belonging to the viewer, regardless of
// published or verification state. This is the dashboard view, for admins
// and regular owners alike.
func (uc *JobUsecase) ListOwned(viewer model.Viewer) ([]model.Job, error) {
	if !viewer.Authenticated {
		return nil, apperror.Authorization("sign in to view your job listings")
	}
	userID := viewer.ID
	jobs, err := uc.jobRepo.List(repository.ListQuery{UserID: &userID})
	if err != nil {
		return nil, apperror.Transient("failed to load your job listings", err)
	}
	return jobs, nil
}

// ListAll is the admin moderation queue: every posting in the system,
// unfiltered by ownership or status.
func (uc *JobUsecase) ListAll(viewer model.Viewer) ([]model.Job, error) {
	if !viewer.IsAdmin {
		return nil, apperror.Authorization("admin access required")
	}
	jobs, err := uc.jobRepo.List(repository.ListQuery{})
	if err != nil {
		return nil, apperror.Transient("failed to load job listings", err)
	}
	return jobs, nil
}

// Get returns a single posting if the viewer may see it. Hidden postings
// resolve to not-found rather than forbidden so their existence is not
// leaked to outsiders.
func (uc *JobUsecase) Get(viewer model.Viewer, id uuid.UUID) (*model.Job, error) {
	job, err := uc.findJob(id)
	if err != nil {
		return nil, err
	}
	if job.PubliclyVisible() || viewer.Owns(job) || viewer.IsAdmin {
		return job, nil
	}
	return nil, apperror.NotFound("job not found")
}

// Create stores a new posting for the viewer. The server assigns the id,
// timestamps and the initial pending verification status; the submitter
// only decides whether the draft is marked published.
func (uc *JobUsecase) Create(viewer model.Viewer, input JobInput) (*model.Job, error) {
	if !viewer.Authenticated {
		return nil, apperror.Authorization("sign in to post a job")
	}
	if err := validateJobInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &model.Job{
		ID:                 uuid.New(),
		UserID:             viewer.ID,
		Published:          input.Published,
		VerificationStatus: model.VerificationPending,
		CreatedAt:          now,
		ExpiresAt:          now.Add(DefaultListingLifetime),
		UpdatedAt:          now,
	}
	applyInput(job, &input)

	if err := uc.jobRepo.Create(job); err != nil {
		return nil, apperror.Transient("failed to save job listing", err)
	}

	if uc.notifier != nil {
		go func(j model.Job) {
			if err := uc.notifier.NotifyJobSubmitted(&j); err != nil {
				log.Printf("moderation webhook failed for job %s: %v", j.ID, err)
			}
		}(*job)
	}

	return job, nil
}

// Update rewrites the owner-editable fields. Only the owner may edit;
// admins moderate through Verify, they do not edit other people's posts.
// The verification status is never touched here.
func (uc *JobUsecase) Update(viewer model.Viewer, id uuid.UUID, input JobInput) (*model.Job, error) {
	job, err := uc.findJob(id)
	if err != nil {
		return nil, err
	}
	if !viewer.Owns(job) {
		return nil, apperror.Authorization("only the owner can edit this job listing")
	}
	if err := validateJobInput(&input); err != nil {
		return nil, err
	}

	applyInput(job, &input)
	job.Published = input.Published
	job.UpdatedAt = time.Now().UTC()

	if err := uc.jobRepo.Update(job); err != nil {
		return nil, apperror.Transient("failed to save job listing", err)
	}
	return job, nil
}

// TogglePublish flips the published flag for the owner or an admin. A
// posting that has not been approved cannot be published; this is enforced
// here, at the authority boundary, so no access path can surface an
// unapproved posting publicly.
func (uc *JobUsecase) TogglePublish(viewer model.Viewer, id uuid.UUID) (*model.Job, error) {
	job, err := uc.findJob(id)
	if err != nil {
		return nil, err
	}
	if !viewer.Owns(job) && !viewer.IsAdmin {
		return nil, apperror.Authorization("only the owner or an admin can change the published state")
	}
	if !job.Published && job.VerificationStatus != model.VerificationApproved {
		return nil, apperror.Validation("job must be approved before it can be published", nil)
	}

	job.Published = !job.Published
	job.UpdatedAt = time.Now().UTC()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, apperror.Transient("failed to update job status", err)
	}
	return job, nil
}

// Verify moves a posting to approved or rejected. Admin only; pending is
// not a valid target, and re-applying the current status is a no-op write.
func (uc *JobUsecase) Verify(viewer model.Viewer, id uuid.UUID, status model.VerificationStatus) (*model.Job, error) {
	if !viewer.IsAdmin {
		return nil, apperror.Authorization("admin access required")
	}
	if status != model.VerificationApproved && status != model.VerificationRejected {
		return nil, apperror.Validation("invalid verification status", map[string]string{
			"status": "must be approved or rejected",
		})
	}
	job, err := uc.findJob(id)
	if err != nil {
		return nil, err
	}

	job.VerificationStatus = status
	job.UpdatedAt = time.Now().UTC()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, apperror.Transient("failed to update verification status", err)
	}
	return job, nil
}

// Delete removes a posting permanently. Owner or admin only.
func (uc *JobUsecase) Delete(viewer model.Viewer, id uuid.UUID) error {
	job, err := uc.findJob(id)
	if err != nil {
		return err
	}
	if !viewer.Owns(job) && !viewer.IsAdmin {
		return apperror.Authorization("only the owner or an admin can delete this job listing")
	}
	if err := uc.jobRepo.Delete(id); err != nil {
		return apperror.Transient("failed to delete job listing", err)
	}
	return nil
}

func (uc *JobUsecase) findJob(id uuid.UUID) (*model.Job, error) {
	job, err := uc.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, apperror.Transient("failed to load job listing", err)
	}
	return job, nil
}

func applyInput(job *model.Job, input *JobInput) {
	job.Title = input.Title
	job.Company = input.Company
	job.CompanyLogo = optional(input.CompanyLogo)
	job.Location = input.Location
	job.SalaryRange = optional(input.SalaryRange)
	job.Description = input.Description
	job.Type = input.Type
	job.Category = input.Category
	job.Experience = input.Experience
	job.Skills = cleanSkills(input.Skills)
	job.ApplicationLink = optional(input.ApplicationLink)
	job.ContactEmail = optional(input.ContactEmail)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// cleanSkills trims entries and drops empties, keeping order and
// duplicates. Skills is never nil on a stored posting.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validateJobInput(input *JobInput) error {
	fields := map[string]string{}
	if len(strings.TrimSpace(input.Title)) < 3 {
		fields["title"] = "job title must be at least 3 characters long"
	}
	if len(strings.TrimSpace(input.Company)) < 2 {
		fields["company"] = "company name is required"
	}
	if len(strings.TrimSpace(input.Location)) < 2 {
		fields["location"] = "location is required"
	}
	if len(strings.TrimSpace(input.Description)) < 50 {
		fields["description"] = "description must be at least 50 characters long"
	}
	if !input.Type.Valid() {
		fields["type"] = "invalid job type"
	}
	if !input.Category.Valid() {
		fields["category"] = "invalid category"
	}
	if !input.Experience.Valid() {
		fields["experience"] = "invalid experience level"
	}
	if input.ApplicationLink != "" {
		if _, err := url.ParseRequestURI(input.ApplicationLink); err != nil {
			fields["application_link"] = "please enter a valid URL"
		}
	}
	if input.ContactEmail != "" {
		if _, err := mail.ParseAddress(input.ContactEmail); err != nil {
			fields["contact_email"] = "please enter a valid email address"
		}
	}
	if len(fields) > 0 {
		return apperror.Validation("invalid job listing", fields)
	}
	return nil
}
