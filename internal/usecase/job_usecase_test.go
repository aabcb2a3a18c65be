package usecase

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"web3jobs/internal/apperror"
	"web3jobs/internal/filter"
	"web3jobs/internal/model"
	"web3jobs/internal/repository"
)

// fakeJobRepo is an in-memory JobRepositoryInterface honoring the same
// constraint and ordering contract as the gorm repository.
type fakeJobRepo struct {
	jobs map[uuid.UUID]model.Job
}

func newFakeJobRepo(jobs ...model.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[uuid.UUID]model.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) List(q repository.ListQuery) ([]model.Job, error) {
	var out []model.Job
	for _, j := range r.jobs {
		if q.Published != nil && j.Published != *q.Published {
			continue
		}
		if q.VerificationStatus != nil && j.VerificationStatus != *q.VerificationStatus {
			continue
		}
		if q.UserID != nil && j.UserID != *q.UserID {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool {
		return out[i].CreatedAt.After(out[k].CreatedAt)
	})
	return out, nil
}

func (r *fakeJobRepo) FindByID(id uuid.UUID) (*model.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &j, nil
}

func (r *fakeJobRepo) Create(job *model.Job) error {
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Update(job *model.Job) error {
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Delete(id uuid.UUID) error {
	delete(r.jobs, id)
	return nil
}

func validInput() JobInput {
	return JobInput{
		Title:       "Smart Contract Auditor",
		Company:     "ChainForge",
		Location:    "Remote",
		Description: strings.Repeat("Audit EVM contracts and write reports. ", 3),
		Type:        model.JobTypeFullTime,
		Category:    model.CategorySmartContracts,
		Experience:  model.ExperienceSenior,
		Skills:      []string{"Solidity", " Foundry ", ""},
		Published:   true,
	}
}

func seededJob(owner uuid.UUID, published bool, status model.VerificationStatus, age time.Duration) model.Job {
	return model.Job{
		ID:                 uuid.New(),
		Title:              "Posting",
		Company:            "Acme",
		Location:           "Remote",
		Description:        "A posting",
		Type:               model.JobTypeFullTime,
		Category:           model.CategoryOther,
		Experience:         model.ExperienceMid,
		Skills:             []string{},
		UserID:             owner,
		Published:          published,
		VerificationStatus: status,
		CreatedAt:          time.Now().UTC().Add(-age),
	}
}

func viewerFor(id uuid.UUID) model.Viewer {
	return model.Viewer{ID: id, Authenticated: true}
}

func adminViewer() model.Viewer {
	return model.Viewer{ID: uuid.New(), Authenticated: true, IsAdmin: true}
}

func TestPendingJobHiddenFromPublicButVisibleToOwnerAndAdmin(t *testing.T) {
	owner := uuid.New()
	pending := seededJob(owner, true, model.VerificationPending, time.Hour)
	approved := seededJob(owner, true, model.VerificationApproved, 2*time.Hour)
	uc := NewJobUsecase(newFakeJobRepo(pending, approved), nil)

	public, err := uc.ListPublic(filter.Spec{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, approved.ID, public[0].ID)

	owned, err := uc.ListOwned(viewerFor(owner))
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	all, err := uc.ListAll(adminViewer())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPublicOrdersNewestFirst(t *testing.T) {
	owner := uuid.New()
	older := seededJob(owner, true, model.VerificationApproved, 48*time.Hour)
	newer := seededJob(owner, true, model.VerificationApproved, time.Hour)
	uc := NewJobUsecase(newFakeJobRepo(older, newer), nil)

	public, err := uc.ListPublic(filter.Spec{})
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, newer.ID, public[0].ID)
	assert.Equal(t, older.ID, public[1].ID)
}

func TestListAllRequiresAdmin(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)
	_, err := uc.ListAll(viewerFor(uuid.New()))
	assert.True(t, apperror.IsType(err, apperror.TypeAuthorization))
}

func TestGetVisibility(t *testing.T) {
	owner := uuid.New()
	pending := seededJob(owner, true, model.VerificationPending, time.Hour)
	uc := NewJobUsecase(newFakeJobRepo(pending), nil)

	_, err := uc.Get(model.Anonymous, pending.ID)
	assert.True(t, apperror.IsType(err, apperror.TypeNotFound))

	got, err := uc.Get(viewerFor(owner), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)

	got, err = uc.Get(adminViewer(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)
}

func TestCreateAssignsModerationDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil)
	owner := viewerFor(uuid.New())

	job, err := uc.Create(owner, validInput())
	require.NoError(t, err)
	assert.Equal(t, model.VerificationPending, job.VerificationStatus)
	assert.Equal(t, owner.ID, job.UserID)
	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.Equal(t, []string{"Solidity", "Foundry"}, []string(job.Skills))
	assert.WithinDuration(t, job.CreatedAt.Add(DefaultListingLifetime), job.ExpiresAt, time.Second)

	// published but still pending: must not reach the public listing
	public, err := uc.ListPublic(filter.Spec{})
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestCreateRequiresAuthentication(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)
	_, err := uc.Create(model.Anonymous, validInput())
	assert.True(t, apperror.IsType(err, apperror.TypeAuthorization))
}

func TestCreateValidatesInput(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)
	input := validInput()
	input.Title = "ab"
	input.Description = "too short"
	input.Category = "not-a-category"
	input.ApplicationLink = "not a url"
	input.ContactEmail = "not-an-email"

	_, err := uc.Create(viewerFor(uuid.New()), input)
	appErr := apperror.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.TypeValidation, appErr.Type)
	assert.Contains(t, appErr.Fields, "title")
	assert.Contains(t, appErr.Fields, "description")
	assert.Contains(t, appErr.Fields, "category")
	assert.Contains(t, appErr.Fields, "application_link")
	assert.Contains(t, appErr.Fields, "contact_email")
}

func TestUpdateIsOwnerOnly(t *testing.T) {
	owner := uuid.New()
	job := seededJob(owner, false, model.VerificationPending, time.Hour)
	repo := newFakeJobRepo(job)
	uc := NewJobUsecase(repo, nil)

	_, err := uc.Update(adminViewer(), job.ID, validInput())
	assert.True(t, apperror.IsType(err, apperror.TypeAuthorization))

	updated, err := uc.Update(viewerFor(owner), job.ID, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Smart Contract Auditor", updated.Title)
	// moderation state is not touched by edits
	assert.Equal(t, model.VerificationPending, updated.VerificationStatus)
}

func TestTogglePublishGatedOnApproval(t *testing.T) {
	owner := uuid.New()
	rejected := seededJob(owner, false, model.VerificationRejected, time.Hour)
	repo := newFakeJobRepo(rejected)
	uc := NewJobUsecase(repo, nil)

	_, err := uc.TogglePublish(viewerFor(owner), rejected.ID)
	assert.True(t, apperror.IsType(err, apperror.TypeValidation))

	stored, err := repo.FindByID(rejected.ID)
	require.NoError(t, err)
	assert.False(t, stored.Published)
}

func TestTogglePublishFlipsApprovedJob(t *testing.T) {
	owner := uuid.New()
	job := seededJob(owner, false, model.VerificationApproved, time.Hour)
	repo := newFakeJobRepo(job)
	uc := NewJobUsecase(repo, nil)

	published, err := uc.TogglePublish(viewerFor(owner), job.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)

	// unpublishing is always allowed, and admins may toggle too
	hidden, err := uc.TogglePublish(adminViewer(), job.ID)
	require.NoError(t, err)
	assert.False(t, hidden.Published)
}

func TestTogglePublishRequiresOwnerOrAdmin(t *testing.T) {
	job := seededJob(uuid.New(), false, model.VerificationApproved, time.Hour)
	uc := NewJobUsecase(newFakeJobRepo(job), nil)

	_, err := uc.TogglePublish(viewerFor(uuid.New()), job.ID)
	assert.True(t, apperror.IsType(err, apperror.TypeAuthorization))
}

func TestVerifyRequiresAdmin(t *testing.T) {
	owner := uuid.New()
	job := seededJob(owner, false, model.VerificationPending, time.Hour)
	repo := newFakeJobRepo(job)
	uc := NewJobUsecase(repo, nil)

	_, err := uc.Verify(viewerFor(owner), job.ID, model.VerificationApproved)
	assert.True(t, apperror.IsType(err, apperror.TypeAuthorization))

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VerificationPending, stored.VerificationStatus)
}

func TestVerifyTransitions(t *testing.T) {
	job := seededJob(uuid.New(), false, model.VerificationPending, time.Hour)
	repo := newFakeJobRepo(job)
	uc := NewJobUsecase(repo, nil)
	admin := adminViewer()

	approved, err := uc.Verify(admin, job.ID, model.VerificationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.VerificationApproved, approved.VerificationStatus)

	// re-approving an approved job is a valid no-op
	again, err := uc.Verify(admin, job.ID, model.VerificationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.VerificationApproved, again.VerificationStatus)

	_, err = uc.Verify(admin, job.ID, model.VerificationPending)
	assert.True(t, apperror.IsType(err, apperror.TypeValidation))

	_, err = uc.Verify(admin, uuid.New(), model.VerificationRejected)
	assert.True(t, apperror.IsType(err, apperror.TypeNotFound))
}

func TestDeleteRemovesPostingEverywhere(t *testing.T) {
	owner := uuid.New()
	job := seededJob(owner, true, model.VerificationApproved, time.Hour)
	repo := newFakeJobRepo(job)
	uc := NewJobUsecase(repo, nil)

	require.NoError(t, uc.Delete(viewerFor(owner), job.ID))

	public, err := uc.ListPublic(filter.Spec{})
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = uc.Get(viewerFor(owner), job.ID)
	assert.True(t, apperror.IsType(err, apperror.TypeNotFound))
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	owner := uuid.New()
	job := seededJob(owner, true, model.VerificationApproved, time.Hour)
	repo := newFakeJobRepo(job)
	uc := NewJobUsecase(repo, nil)

	err := uc.Delete(viewerFor(uuid.New()), job.ID)
	assert.True(t, apperror.IsType(err, apperror.TypeAuthorization))

	require.NoError(t, uc.Delete(adminViewer(), job.ID))
}

func TestListPublicAppliesFilterSpec(t *testing.T) {
	owner := uuid.New()
	match := seededJob(owner, true, model.VerificationApproved, time.Hour)
	match.Title = "Solidity Engineer"
	match.Category = model.CategorySmartContracts
	other := seededJob(owner, true, model.VerificationApproved, 2*time.Hour)
	uc := NewJobUsecase(newFakeJobRepo(match, other), nil)

	got, err := uc.ListPublic(filter.Spec{
		Search:     "solidity",
		Categories: []model.JobCategory{model.CategorySmartContracts},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, match.ID, got[0].ID)
}
