// Package supabase fala com a API de auth gerenciada. É ela quem revalida o
// token de SSO; este serviço nunca decide confiança sozinho.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// SetSession troca o access token bruto por uma sessão completa. O refresh
// token vai vazio de propósito: a API deriva a sessão só do access token.
func (c *Client) SetSession(ctx context.Context, accessToken, refreshToken string) (*Session, error) {
	url := fmt.Sprintf("%s/auth/v1/session", c.baseURL)

	payload := setSessionRequest{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar payload de sessão: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com supabase auth: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ ERRO SUPABASE AUTH (Status %d): %s\n", resp.StatusCode, string(body))
		return nil, fmt.Errorf("supabase auth rejeitou o token (status %d)", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do supabase: %w", err)
	}

	return &session, nil
}

// DeleteAuthUser remove o usuário do Supabase Auth via API admin. Usado só
// pela limpeza de dados de teste.
func (c *Client) DeleteAuthUser(ctx context.Context, userID string) error {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, "DELETE", url, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com supabase admin: %w", err)
	}
	defer resp.Body.Close()

	// 404 conta como sucesso: o usuário já não existe.
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro ao deletar auth user %s (status %d): %s", userID, resp.StatusCode, string(body))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "AmericanDreamAPI/1.0")
}
