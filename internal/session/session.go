// Package session implements the login gate and the role predicates that guard mutations.
package session

import (
	"github.com/plague-community-hub/internal/models"
)

// Authenticator resolves a session from the member directory.
// Real credential checks plug in here.
type Authenticator interface {
	Login(candidates []models.Member) (models.UserSession, error)
}

// DemoAuthenticator logs in as the first Elder, or the first member when no Elder exists.
type DemoAuthenticator struct{}

// Login implements Authenticator
func (DemoAuthenticator) Login(candidates []models.Member) (models.UserSession, error) {
	if len(candidates) == 0 {
		return Logout(), models.ErrUnauthenticated
	}

	chosen := candidates[0]
	for _, m := range candidates {
		if m.Role == models.RoleElder {
			chosen = m
			break
		}
	}

	member := chosen.Clone()
	return models.UserSession{IsLoggedIn: true, Member: &member}, nil
}

// Login is shorthand for DemoAuthenticator{}.Login
func Login(members []models.Member) (models.UserSession, error) {
	return DemoAuthenticator{}.Login(members)
}

// Logout returns the anonymous session
func Logout() models.UserSession {
	return models.UserSession{}
}

func active(s models.UserSession) bool {
	return s.IsLoggedIn && s.Member != nil
}

// CanPropose reports whether the session may create proposals (Representative and above)
func CanPropose(s models.UserSession) bool {
	return active(s) && s.Member.Role.AtLeast(models.RoleRepresentative)
}

// CanMutateVotesOrEnlistment reports whether the session may upvote or enlist
func CanMutateVotesOrEnlistment(s models.UserSession) bool {
	return active(s)
}

// IsOwner reports whether the session's member is the project's Elder
func IsOwner(s models.UserSession, p models.Project) bool {
	return active(s) && s.Member.ID == p.ElderID
}

// RequireLogin returns ErrUnauthenticated for anonymous sessions
func RequireLogin(s models.UserSession) error {
	if !active(s) {
		return models.ErrUnauthenticated
	}
	return nil
}

// RequireProposer gates proposal creation
func RequireProposer(s models.UserSession) error {
	if err := RequireLogin(s); err != nil {
		return err
	}
	if !CanPropose(s) {
		return models.ErrUnauthorized
	}
	return nil
}

// RequireOwner gates project edits
func RequireOwner(s models.UserSession, p models.Project) error {
	if err := RequireLogin(s); err != nil {
		return err
	}
	if !IsOwner(s, p) {
		return models.ErrUnauthorized
	}
	return nil
}
