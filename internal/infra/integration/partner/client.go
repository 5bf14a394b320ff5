// Package partner sincroniza pagamentos com o sistema do parceiro comercial.
// Falha aqui nunca é engolida: o erro sobe para quem chamou decidir.
package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SyncPayment notifica o parceiro de um pagamento criado.
func (c *Client) SyncPayment(ctx context.Context, input SyncPaymentInput) error {
	if c.apiKey == "" {
		log.Println("⚠️ Partner: PARTNER_API_KEY não configurado")
		return fmt.Errorf("integração com parceiro não configurada")
	}

	url := fmt.Sprintf("%s/payments/sync", c.baseURL)

	payload := syncPaymentRequest{
		UserID:                input.UserID,
		PaymentID:             input.PaymentID,
		LeadID:                input.LeadID,
		Amount:                input.Amount,
		Currency:              input.Currency,
		PaymentMethod:         input.PaymentMethod,
		Status:                input.Status,
		StripeSessionID:       input.StripeSessionID,
		StripePaymentIntentID: input.StripePaymentIntentID,
		Metadata:              input.Metadata,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao montar payload de sync: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "AmericanDreamAPI/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com parceiro: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ ERRO SYNC PARCEIRO (Status %d): %s", resp.StatusCode, string(body))
		return fmt.Errorf("parceiro rejeitou o sync do pagamento %s (status %d)", input.PaymentID, resp.StatusCode)
	}

	return nil
}
