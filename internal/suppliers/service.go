package suppliers

import (
	"context"
	"log/slog"
)

// Notifier is told about every successful registration.
type Notifier interface {
	SupplierRegistered(ctx context.Context, sup Supplier) error
}

// Recorder counts successful registrations.
type Recorder interface {
	SupplierRegistered()
}

// Service wraps supplier registration rules.
type Service struct {
	store    *Store
	notifier Notifier
	recorder Recorder
	logger   *slog.Logger
}

// NewService constructs a Service. notifier and recorder may be nil.
func NewService(store *Store, notifier Notifier, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, notifier: notifier, recorder: recorder, logger: logger}
}

// Register validates sup and appends it unchanged. When fields are missing
// their names are returned and the store is not touched.
func (s *Service) Register(ctx context.Context, sup Supplier) ([]string, error) {
	if missing := Validate(sup); len(missing) > 0 {
		return missing, nil
	}
	if err := s.store.Append(ctx, sup); err != nil {
		return nil, err
	}
	if s.recorder != nil {
		s.recorder.SupplierRegistered()
	}
	if s.notifier != nil {
		if err := s.notifier.SupplierRegistered(ctx, sup); err != nil {
			s.logger.Warn("notify supplier registered", slog.Any("error", err))
		}
	}
	return nil, nil
}

// List returns every stored supplier in insertion order.
func (s *Service) List() []Supplier {
	return s.store.All()
}
