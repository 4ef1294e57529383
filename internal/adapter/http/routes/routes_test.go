package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lesson_billing/internal/adapter/http/handlers"
	"lesson_billing/internal/app"
	"lesson_billing/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a, err := app.New(context.Background(), &config.Config{
		StorageDriver:      config.StorageMemory,
		SmsDriver:          config.SmsDriverDisabled,
		BillingTimezone:    "Asia/Seoul",
		SweepConcurrency:   1,
		PaymentLinkMock:    true,
		InvoiceViewBaseURL: "http://billing.local/v1/invoices",
	})
	require.NoError(t, err)
	return NewRouter(a)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.ProviderIDHeader, "p-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Infrastructure(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_ContractLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/contracts", `{"client_id":"cl-1","client_name":"Kim","billing_mode":"prepaid",`+
		`"absence_policy":"deduct_next","pricing":{"kind":"sessions","total_sessions":4},"base_price":"40000"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var contract struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contract))

	w = do(t, r, http.MethodPost, "/v1/contracts/"+contract.ID+"/send", "")
	assert.Equal(t, http.StatusConflict, w.Code, "draft contracts cannot be sent")

	for _, party := range []string{"provider", "client"} {
		w = do(t, r, http.MethodPost, "/v1/contracts/"+contract.ID+"/sign", `{"party":"`+party+`"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/v1/contracts/"+contract.ID+"/send", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/contracts/"+contract.ID+"/invoices", "")
	require.Equal(t, http.StatusOK, w.Code)
	var invoices []struct {
		ID            string `json:"id"`
		InvoiceNumber int    `json:"invoice_number"`
		FinalAmount   string `json:"final_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoices))
	require.Len(t, invoices, 1)
	assert.Equal(t, 1, invoices[0].InvoiceNumber)
	assert.Equal(t, "40000", invoices[0].FinalAmount)

	w = do(t, r, http.MethodPost, "/v1/invoices/send", `{"invoice_ids":["`+invoices[0].ID+`"],"channel":"sms"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.Contains(w.Body.String(), `"success":false`), "sms is disabled in this router")

	w = do(t, r, http.MethodGet, "/v1/invoices", "")
	require.Equal(t, http.StatusOK, w.Code)
	var buckets struct {
		DueToday []struct {
			ID          string `json:"id"`
			SendHistory []struct {
				Success bool `json:"success"`
			} `json:"send_history"`
		} `json:"due_today"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buckets))
	require.Len(t, buckets.DueToday, 1)
	require.Len(t, buckets.DueToday[0].SendHistory, 1)
	assert.False(t, buckets.DueToday[0].SendHistory[0].Success)
}
