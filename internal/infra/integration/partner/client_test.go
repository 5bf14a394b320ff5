package partner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncPaymentSendsBearerAndPayload(t *testing.T) {
	var gotAuth string
	var gotBody syncPaymentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("chave-secreta", server.URL)

	err := client.SyncPayment(context.Background(), SyncPaymentInput{
		UserID:        "auth-1",
		PaymentID:     "pay-1",
		LeadID:        "lead-1",
		Amount:        49700,
		Currency:      "BRL",
		PaymentMethod: "comprovante",
		Status:        "CONFIRMED",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer chave-secreta", gotAuth)
	assert.Equal(t, "pay-1", gotBody.PaymentID)
	assert.Equal(t, 49700, gotBody.Amount)
}

func TestSyncPaymentNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("chave-errada", server.URL)

	err := client.SyncPayment(context.Background(), SyncPaymentInput{PaymentID: "pay-1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestSyncPaymentWithoutAPIKey(t *testing.T) {
	client := NewClient("", "http://irrelevante")

	err := client.SyncPayment(context.Background(), SyncPaymentInput{PaymentID: "pay-1"})

	assert.Error(t, err)
}
