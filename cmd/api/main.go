package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/leadmail/internal/config"
	"github.com/xavierca1/leadmail/internal/infra/database"
	"github.com/xavierca1/leadmail/internal/infra/http/handlers"
	"github.com/xavierca1/leadmail/internal/infra/http/middleware"
	"github.com/xavierca1/leadmail/internal/infra/integration/claude"
	"github.com/xavierca1/leadmail/internal/infra/integration/openai"
	"github.com/xavierca1/leadmail/internal/infra/mail"
	"github.com/xavierca1/leadmail/internal/infra/queue"
	"github.com/xavierca1/leadmail/internal/infra/worker"
	"github.com/xavierca1/leadmail/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	logRepo := database.NewEmailLogRepository(db)
	smtpRepo := database.NewSmtpSettingsRepository(db)
	warmupRepo := database.NewWarmupSettingsRepository(db)

	// 2. Event bus (opcional)
	var (
		publisher  usecase.EngagementPublisher
		rabbitConn handlers.ConnectionState
	)
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos de engajamento desativados: %v", err)
		} else {
			defer rabbitMQ.Close()
			publisher = queue.NewProducer(rabbitMQ.Ch)
			rabbitConn = rabbitMQ.Conn
			startEngagementConsumer(ctx, rabbitMQ)
		}
	}

	// 3. Provedores de LLM
	var (
		openAIClient usecase.OpenAIClient
		claudeClient usecase.ClaudeClient
	)
	if cfg.OpenAIAPIKey != "" {
		openAIClient = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	}
	if cfg.ClaudeAPIKey != "" {
		claudeClient = claude.NewClient(cfg.ClaudeAPIKey, cfg.ClaudeBaseURL)
	}

	// 4. UseCases
	sender := mail.NewSMTPSender()
	sendEmailUC := usecase.NewSendEmailUseCase(
		smtpRepo, warmupRepo, logRepo, leadRepo, sender,
		cfg.TrackingBaseURL, cfg.GuardLeadRegression,
	)
	trackUC := usecase.NewTrackEngagementUseCase(logRepo, leadRepo, publisher)
	chatUC := usecase.NewChatCompletionUseCase(openAIClient, claudeClient)
	testSmtpUC := usecase.NewTestSmtpUseCase(sender)
	listLogsUC := usecase.NewListEmailLogsUseCase(logRepo)

	// 5. Workers
	rampWorker := worker.NewWarmupRampWorker(warmupRepo, cfg.WarmupRampInterval)
	rampWorker.OnRamped = middleware.RecordWarmupRamps
	go rampWorker.Start(ctx)

	// 6. Router
	router := handlers.NewRouter(handlers.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		Verifier:    middleware.NewTokenVerifier(cfg.JWTSecret),
		SendEmail:   handlers.NewSendEmailHandler(sendEmailUC),
		TestSmtp:    handlers.NewTestSmtpHandler(testSmtpUC),
		Chat:        handlers.NewChatHandler(chatUC),
		Tracking:    handlers.NewTrackingHandler(trackUC),
		EmailLogs:   handlers.NewEmailLogsHandler(listLogsUC),
		Health: handlers.NewHealthHandler(db, rabbitConn, map[string]bool{
			usecase.ProviderOpenAI: openAIClient != nil,
			usecase.ProviderClaude: claudeClient != nil,
		}),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second, // SMTP and LLM calls run inside the request
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🔥 Server leadmail rodando na porta %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Servidor caiu: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️ Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Erro no shutdown: %v", err)
	}
}

// startEngagementConsumer runs the queue worker on its own channel so
// publishing from request handlers never shares a channel with consumption.
func startEngagementConsumer(ctx context.Context, rabbitMQ *queue.RabbitMQ) {
	ch, err := rabbitMQ.Conn.Channel()
	if err != nil {
		log.Printf("⚠️ Falha ao abrir canal do consumidor: %v", err)
		return
	}

	w := queue.NewWorker(ch, queue.EngagementHandlerFunc(func(ctx context.Context, event queue.EngagementEvent) error {
		middleware.RecordEngagement(event.Type)
		log.Printf("📊 [ENGAGEMENT] %s log=%s lead=%s user=%s", event.Type, event.LogID, event.LeadID, event.UserID)
		return nil
	}))

	go func() {
		defer ch.Close()
		if err := w.Start(ctx, queue.QueueName); err != nil {
			log.Printf("❌ %v", err)
		}
	}()
}
