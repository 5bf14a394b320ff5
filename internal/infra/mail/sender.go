package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const paymentConfirmationTemplate = `
<html>
  <body>
    <p>Olá {{.Name}},</p>
    <p>Recebemos a confirmação do seu pagamento de {{.Currency}} {{.Amount}}.</p>
    <p>Nossa equipe vai entrar em contato para os próximos passos da sua consultoria.</p>
    <p>Equipe American Dream</p>
  </body>
</html>
`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendPaymentConfirmation(to, name string, amountCents int, currency string) error {
	data := PaymentEmailData{
		Name:     name,
		Amount:   fmt.Sprintf("%d,%02d", amountCents/100, amountCents%100),
		Currency: currency,
	}

	t, err := template.New("payment").Parse(paymentConfirmationTemplate)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Pagamento confirmado, %s! 🎉", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
