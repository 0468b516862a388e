package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornecedores/cadastro/internal/suppliers"
)

func TestNewSupplierRegisteredTask(t *testing.T) {
	task, err := NewSupplierRegisteredTask(suppliers.Supplier{
		CNPJ:        "11.111.111/0001-11",
		RazaoSocial: "Acme Comercio LTDA",
		Email:       "contato@acme.com.br",
		Cidade:      "Campinas",
	})
	require.NoError(t, err)
	assert.Equal(t, TaskSupplierRegistered, task.Type())

	var payload SupplierRegisteredPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, SupplierRegisteredPayload{
		CNPJ:        "11.111.111/0001-11",
		RazaoSocial: "Acme Comercio LTDA",
		Email:       "contato@acme.com.br",
	}, payload)
}

func TestSupplierRegisteredHandler(t *testing.T) {
	handler := SupplierRegisteredHandler(nil)

	task, err := NewSupplierRegisteredTask(suppliers.Supplier{CNPJ: "11.111.111/0001-11"})
	require.NoError(t, err)
	assert.NoError(t, handler.ProcessTask(context.Background(), task))

	bad := asynq.NewTask(TaskSupplierRegistered, []byte("{"))
	err = handler.ProcessTask(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHealthWithoutInspector(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/jobs", NewHandler(nil, nil).MountRoutes)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"queue":"default","pending":0}`, rr.Body.String())
}
