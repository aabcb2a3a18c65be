package model

import "github.com/google/uuid"

// Viewer is the request-scoped role every visibility and authority check is
// evaluated under. It is passed explicitly into usecase operations; nothing
// reads session state from a global.
type Viewer struct {
	ID              uuid.UUID
	Authenticated   bool
	IsAdmin         bool
	IsTrustedPoster bool
}

// Anonymous is the viewer used for requests without a valid session.
var Anonymous = Viewer{}

func (v Viewer) Owns(j *Job) bool {
	return v.Authenticated && v.ID == j.UserID
}
