package auth

import (
	"context"

	"github.com/fornecedores/cadastro/internal/shared"
)

// Recorder counts login outcomes.
type Recorder interface {
	LoginAttempt(success bool)
}

// Service wraps authentication business rules.
type Service struct {
	verifier Verifier
	recorder Recorder
}

// NewService constructs a new Service. recorder may be nil.
func NewService(verifier Verifier, recorder Recorder) *Service {
	return &Service{verifier: verifier, recorder: recorder}
}

// Authenticate validates username/password credentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	ok := s.verifier.Verify(username, password)
	if s.recorder != nil {
		s.recorder.LoginAttempt(ok)
	}
	if !ok {
		return shared.ErrInvalidCredentials
	}
	return nil
}
