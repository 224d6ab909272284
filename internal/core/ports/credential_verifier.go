package ports

import "context"

// CredentialVerifier decides whether a username/password pair may log in.
// An unknown user or wrong password is (false, nil); err is reserved for
// backend failures.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}
