package auth

import "golang.org/x/crypto/bcrypt"

// Default credentials accepted by FixedVerifier when none are configured.
const (
	DefaultUsername = "adm"
	DefaultPassword = "123456"
)

// Verifier decides whether a username/password pair may log in.
type Verifier interface {
	Verify(username, password string) bool
}

// FixedVerifier accepts exactly one username/password pair, compared byte for byte.
type FixedVerifier struct {
	Username string
	Password string
}

// Verify implements Verifier.
func (v FixedVerifier) Verify(username, password string) bool {
	return username == v.Username && password == v.Password
}

// BcryptVerifier accepts one username whose password matches a bcrypt hash.
type BcryptVerifier struct {
	Username     string
	PasswordHash string
}

// Verify implements Verifier.
func (v BcryptVerifier) Verify(username, password string) bool {
	if username != v.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) == nil
}

var (
	_ Verifier = FixedVerifier{}
	_ Verifier = BcryptVerifier{}
)
