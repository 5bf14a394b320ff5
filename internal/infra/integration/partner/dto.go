package partner

type SyncPaymentInput struct {
	UserID                string
	PaymentID             string
	LeadID                string
	Amount                int
	Currency              string
	PaymentMethod         string
	Status                string
	StripeSessionID       string
	StripePaymentIntentID string
	Metadata              map[string]string
}

type syncPaymentRequest struct {
	UserID                string            `json:"user_id"`
	PaymentID             string            `json:"payment_id"`
	LeadID                string            `json:"lead_id,omitempty"`
	Amount                int               `json:"amount"`
	Currency              string            `json:"currency,omitempty"`
	PaymentMethod         string            `json:"payment_method"`
	Status                string            `json:"status"`
	StripeSessionID       string            `json:"stripe_session_id,omitempty"`
	StripePaymentIntentID string            `json:"stripe_payment_intent_id,omitempty"`
	Metadata              map[string]string `json:"metadata,omitempty"`
}
