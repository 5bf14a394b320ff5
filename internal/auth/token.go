// Package auth decodifica o token de SSO vindo do provedor parceiro.
//
// A decodificação aqui é só para diagnóstico e exibição: nenhuma assinatura é
// verificada neste serviço. A decisão de confiança fica inteira com a API de
// sessão do Supabase, que revalida o token bruto.
package auth

import (
	"log"

	"github.com/golang-jwt/jwt/v5"
)

// UserMetadata é o objeto aninhado "user_metadata" que o provedor preenche no
// cadastro. Quando presente, tem precedência sobre os claims de topo.
type UserMetadata struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	PhoneCountryCode string `json:"phone_country_code"`
}

type TokenClaims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email"`
	UserID       string       `json:"user_id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	PhoneCountry string       `json:"phone_country_code"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// IdentityClaims é o resultado consolidado de ExtractIdentity. Vale só para
// logging — nunca para autorização.
type IdentityClaims struct {
	Subject          string `json:"subject"`
	Email            string `json:"email"`
	Name             string `json:"name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	PhoneCountryCode string `json:"phone_country_code,omitempty"`
}

// DecodeToken abre o payload de um token compacto de três segmentos sem
// verificar assinatura. Qualquer falha de formato vira (nil, false) com um log
// de diagnóstico; nada escapa como erro para o chamador.
func DecodeToken(token string) (*TokenClaims, bool) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		log.Printf("⚠️ [AUTH] Token SSO indecodificável: %v", err)
		return nil, false
	}
	return claims, true
}

// ExtractIdentity consolida os claims de identidade: metadata aninhado ganha
// dos campos de topo; para o subject, "sub" ganha de "user_id".
func ExtractIdentity(token string) (*IdentityClaims, bool) {
	claims, ok := DecodeToken(token)
	if !ok {
		return nil, false
	}

	id := &IdentityClaims{
		Subject:          firstNonEmpty(claims.Subject, claims.UserID),
		Email:            firstNonEmpty(claims.UserMetadata.Email, claims.Email),
		Name:             firstNonEmpty(claims.UserMetadata.Name, claims.Name),
		Phone:            firstNonEmpty(claims.UserMetadata.Phone, claims.Phone),
		PhoneCountryCode: firstNonEmpty(claims.UserMetadata.PhoneCountryCode, claims.PhoneCountry),
	}
	return id, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
