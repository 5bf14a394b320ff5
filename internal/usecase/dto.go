package usecase

type CreatePaymentInput struct {
	LeadID           string `json:"lead_id"`
	TermAcceptanceID string `json:"term_acceptance_id"`
	Amount           int    `json:"amount,omitempty"`
	Currency         string `json:"currency,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
}

type CreatePaymentOutput struct {
	PaymentID string `json:"payment_id"`
}

type AcceptTermsInput struct {
	LeadID      string `json:"lead_id"`
	ContractURL string `json:"contract_url,omitempty"`
	ClientIP    string `json:"-"` // preenchido pelo handler, não pelo corpo
}

type AcceptTermsOutput struct {
	TermAcceptanceID string `json:"term_acceptance_id"`
}

type CleanupDetail struct {
	LeadID          string `json:"lead_id"`
	Email           string `json:"email"`
	DeletedPayments int    `json:"deleted_payments"`
	DeletedTerms    int    `json:"deleted_terms"`
	AuthUserDeleted bool   `json:"auth_user_deleted"`
	Error           string `json:"error,omitempty"`
}

type CleanupOutput struct {
	Success          bool            `json:"success"`
	Found            int             `json:"found"`
	DeletedLeads     int             `json:"deleted_leads"`
	DeletedAuthUsers int             `json:"deleted_auth_users"`
	Details          []CleanupDetail `json:"details"`
}
