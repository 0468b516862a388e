package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/fornecedores/cadastro/internal/suppliers"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskSupplierRegistered announces a newly registered supplier.
	TaskSupplierRegistered = "suppliers:registered"
)

// SupplierRegisteredPayload carries the identifying fields of a new supplier.
type SupplierRegisteredPayload struct {
	CNPJ        string `json:"cnpj"`
	RazaoSocial string `json:"razao"`
	Email       string `json:"email"`
}

// NewSupplierRegisteredTask constructs an Asynq task for sup.
func NewSupplierRegisteredTask(sup suppliers.Supplier) (*asynq.Task, error) {
	data, err := json.Marshal(SupplierRegisteredPayload{
		CNPJ:        sup.CNPJ,
		RazaoSocial: sup.RazaoSocial,
		Email:       sup.Email,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSupplierRegistered, data), nil
}

// SupplierRegisteredHandler processes TaskSupplierRegistered tasks.
func SupplierRegisteredHandler(logger *slog.Logger) asynq.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SupplierRegisteredPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("decode %s payload: %v: %w", TaskSupplierRegistered, err, asynq.SkipRetry)
		}
		// The notification is delivered as a structured log record.
		logger.Info("supplier registered",
			slog.String("cnpj", payload.CNPJ),
			slog.String("razao", payload.RazaoSocial),
			slog.String("email", payload.Email),
		)
		return nil
	}
}
