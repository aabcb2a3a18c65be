package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, JobTypeFullTime.Valid())
	assert.True(t, JobTypeFreelance.Valid())
	assert.False(t, JobType("part-time").Valid())

	assert.Len(t, CategoryLabels, 11)
	for c := range CategoryLabels {
		assert.True(t, c.Valid())
	}
	assert.False(t, JobCategory("devops").Valid())

	assert.True(t, ExperienceLead.Valid())
	assert.False(t, ExperienceLevel("principal").Valid())

	assert.True(t, VerificationPending.Valid())
	assert.True(t, VerificationApproved.Valid())
	assert.True(t, VerificationRejected.Valid())
	assert.False(t, VerificationStatus("flagged").Valid())
}

func TestPubliclyVisible(t *testing.T) {
	cases := []struct {
		published bool
		status    VerificationStatus
		want      bool
	}{
		{true, VerificationApproved, true},
		{true, VerificationPending, false},
		{true, VerificationRejected, false},
		{false, VerificationApproved, false},
		{false, VerificationPending, false},
	}
	for _, tc := range cases {
		j := Job{Published: tc.published, VerificationStatus: tc.status}
		assert.Equal(t, tc.want, j.PubliclyVisible(), "published=%v status=%s", tc.published, tc.status)
	}
}

func TestCanApplyCoversAllCombinations(t *testing.T) {
	link := "https://example.com/apply"
	email := "jobs@example.com"
	empty := ""

	assert.False(t, (&Job{}).CanApply())
	assert.False(t, (&Job{ApplicationLink: &empty, ContactEmail: &empty}).CanApply())
	assert.True(t, (&Job{ApplicationLink: &link}).CanApply())
	assert.True(t, (&Job{ContactEmail: &email}).CanApply())
	assert.True(t, (&Job{ApplicationLink: &link, ContactEmail: &email}).CanApply())
}
