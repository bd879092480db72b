// Package access holds the authorization predicates evaluated before an
// operation runs. Predicates only look at a Principal, so the same rules
// apply whatever transport produced it.
package access

import (
	"context"

	"medicare/utils"
)

// CredentialState describes what the caller presented.
type CredentialState int

const (
	// Anonymous callers sent no credential at all.
	Anonymous CredentialState = iota
	// Verified callers sent a valid credential.
	Verified
	// Rejected callers sent a credential that failed verification.
	Rejected
)

// Principal is the caller identity resolved from the request.
type Principal struct {
	Email      string
	Credential CredentialState
}

func (p Principal) Authenticated() bool {
	return p.Credential == Verified && p.Email != ""
}

// RoleResolver maps an identity to its stored role.
type RoleResolver interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// Policy decides whether a principal may run an operation.
type Policy interface {
	Authorize(ctx context.Context, p Principal) error
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(ctx context.Context, p Principal) error

func (f PolicyFunc) Authorize(ctx context.Context, p Principal) error {
	return f(ctx, p)
}

// Public admits everyone.
func Public() Policy {
	return PolicyFunc(func(context.Context, Principal) error { return nil })
}

// Authenticated admits principals holding a verified credential.
func Authenticated() Policy {
	return PolicyFunc(func(_ context.Context, p Principal) error {
		switch {
		case p.Credential == Anonymous:
			return utils.NewError(utils.KindUnauthorized, "unauthorized access")
		case !p.Authenticated():
			return utils.NewError(utils.KindForbidden, "forbidden access")
		}
		return nil
	})
}

// RequireRole admits authenticated principals whose stored role equals role.
func RequireRole(resolver RoleResolver, role string) Policy {
	return All(Authenticated(), PolicyFunc(func(ctx context.Context, p Principal) error {
		stored, err := resolver.RoleOf(ctx, p.Email)
		if err != nil {
			return utils.WrapError(utils.KindTransientStorage, "failed to resolve caller role", err)
		}
		if stored != role {
			return utils.NewError(utils.KindForbidden, "forbidden access, "+role+" role required")
		}
		return nil
	}))
}

// All admits a principal only if every policy does, evaluated in order.
func All(policies ...Policy) Policy {
	return PolicyFunc(func(ctx context.Context, p Principal) error {
		for _, policy := range policies {
			if err := policy.Authorize(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// RequireSubject admits an authenticated principal acting on its own email.
func RequireSubject(p Principal, email string) error {
	if err := Authenticated().Authorize(context.Background(), p); err != nil {
		return err
	}
	if p.Email != email {
		return utils.NewError(utils.KindForbidden, "forbidden access to another requester's bookings")
	}
	return nil
}
