package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AmericanDreamdev/american-dream-api/internal/infra/database"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/http/handlers"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/http/middleware"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/ipinfo"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/partner"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/supabase"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/mail"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/queue"
	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	termRepo := database.NewTermAcceptanceRepository(db)

	// 2. Integrações
	supa := supabase.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_SERVICE_KEY"))
	partnerClient := partner.NewClient(os.Getenv("PARTNER_API_KEY"), os.Getenv("PARTNER_SYNC_URL"))
	geoClient := ipinfo.NewClient(os.Getenv("IPINFO_URL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Worker de notificação (consome a fila e envia email)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createPaymentUC := usecase.NewCreatePaymentUseCase(paymentRepo, leadRepo, termRepo, partnerClient, producer)
	acceptTermsUC := usecase.NewAcceptTermsUseCase(termRepo, leadRepo, geoClient)
	cleanupUC := usecase.NewCleanupTestUsersUseCase(leadRepo, paymentRepo, termRepo, supa)
	sessionUC := usecase.NewEstablishSessionUseCase(supa)

	// 5. Handlers
	dashboardHandler := handlers.NewDashboardHandler(leadRepo)
	paymentHandler := handlers.NewPaymentHandler(createPaymentUC)
	termsHandler := handlers.NewTermsHandler(acceptTermsUC)
	cleanupHandler := handlers.NewCleanupHandler(cleanupUC)
	ssoHandler := handlers.NewSSOHandler(sessionUC, os.Getenv("SSO_ERROR_REDIRECT_URL"))
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/dashboard/leads", dashboardHandler.HandleListLeads)
	r.Get("/auth/callback", ssoHandler.HandleCallback)
	r.Post("/terms/accept", termsHandler.HandleAccept)
	r.Post("/functions/create-payment-for-proof", paymentHandler.HandleCreateForProof)
	r.Post("/functions/cleanup-test-users", cleanupHandler.HandleCleanup)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 American Dream API rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
