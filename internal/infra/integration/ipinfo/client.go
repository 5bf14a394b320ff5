// Package ipinfo resolve a localização aproximada de um IP para a trilha de
// auditoria dos aceites de contrato. Consulta best-effort: qualquer falha vira
// resultado vazio e a operação principal segue.
package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

type lookupResponse struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://ipinfo.io"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 3 * time.Second},
	}
}

// Lookup devolve "cidade, região, país" ou string vazia. Nunca retorna erro.
func (c *Client) Lookup(ctx context.Context, ip string) string {
	if ip == "" {
		return ""
	}

	url := fmt.Sprintf("%s/%s/json", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return ""
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("⚠️ [IPINFO] Lookup falhou para %s: %v", ip, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ [IPINFO] Lookup devolveu status %d para %s", resp.StatusCode, ip)
		return ""
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}

	geo := ""
	for _, part := range []string{body.City, body.Region, body.Country} {
		if part == "" {
			continue
		}
		if geo != "" {
			geo += ", "
		}
		geo += part
	}
	return geo
}
