package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender define o contrato do envio de confirmação (email hoje).
type NotificationSender interface {
	SendPaymentConfirmation(to, name string, amountCents int, currency string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
	dedupe  *Dedupe
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
		dedupe:  NewDedupe(),
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload PaymentCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem malformada. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if !w.dedupe.MarkOnce(payload.PaymentID) {
				log.Printf("📥 [WORKER] Pagamento %s já notificado, ignorando reentrega", payload.PaymentID)
				d.Ack(false)
				continue
			}

			log.Printf("⚙️ [WORKER] Notificando pagamento %s para %s", payload.PaymentID, payload.Email)

			err := w.Sender.SendPaymentConfirmation(payload.Email, payload.Name, payload.Amount, payload.Currency)
			if err != nil {
				log.Printf("❌ [WORKER] Erro no envio: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Confirmação enviada para %s", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
