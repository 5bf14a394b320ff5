package mail

type PaymentEmailData struct {
	Name     string
	Amount   string
	Currency string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
