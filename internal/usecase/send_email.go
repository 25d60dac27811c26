package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xavierca1/leadmail/internal/entity"
	"github.com/xavierca1/leadmail/internal/infra/mail"
)

type SendEmailUseCase struct {
	SmtpRepo   entity.SmtpSettingsRepositoryInterface
	WarmupRepo entity.WarmupSettingsRepositoryInterface
	LogRepo    entity.EmailLogRepositoryInterface
	LeadRepo   entity.LeadRepositoryInterface
	Sender     EmailSender

	// TrackingBaseURL enables the open pixel and click rewriting when set.
	TrackingBaseURL string
	// GuardLeadRegression stops a resend from moving a lead that is already
	// past "sent" back to "sent".
	GuardLeadRegression bool

	Now func() time.Time
}

func NewSendEmailUseCase(
	smtpRepo entity.SmtpSettingsRepositoryInterface,
	warmupRepo entity.WarmupSettingsRepositoryInterface,
	logRepo entity.EmailLogRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	sender EmailSender,
	trackingBaseURL string,
	guardLeadRegression bool,
) *SendEmailUseCase {
	return &SendEmailUseCase{
		SmtpRepo:            smtpRepo,
		WarmupRepo:          warmupRepo,
		LogRepo:             logRepo,
		LeadRepo:            leadRepo,
		Sender:              sender,
		TrackingBaseURL:     trackingBaseURL,
		GuardLeadRegression: guardLeadRegression,
		Now:                 time.Now,
	}
}

func (uc *SendEmailUseCase) Execute(ctx context.Context, input SendEmailInput) (*SendEmailOutput, error) {
	if errs := ValidateSendEmailInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	smtp, err := uc.SmtpRepo.FindByUserID(ctx, input.UserID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, configError("SMTP not configured")
	}
	if err != nil {
		return nil, databaseError("failed to load SMTP settings", err)
	}

	if err := uc.checkWarmup(ctx, input.UserID); err != nil {
		return nil, err
	}

	lead := uc.findLead(ctx, input.UserID, input.LeadID)

	subject, body := input.Subject, input.Body
	if subject == "" || body == "" {
		composedSubject, composedBody := ComposeEmail(lead, smtp.SenderName())
		if subject == "" {
			subject = composedSubject
		}
		if body == "" {
			body = composedBody
		}
	}

	logID := entity.NewEmailLogID()
	msg := mail.Message{
		FromEmail: smtp.FromEmail,
		FromName:  smtp.FromName,
		To:        input.ToEmail,
		Subject:   subject,
		TextBody:  body,
		HTMLBody:  mail.DecorateHTML(PlainToHTML(body), uc.TrackingBaseURL, logID),
	}

	log.Printf("📤 [SEND] user=%s to=%s via %s:%d", input.UserID, input.ToEmail, smtp.Host, smtp.Port)

	if err := uc.Sender.Send(ctx, smtp, msg); err != nil {
		log.Printf("❌ [SEND] falha SMTP para %s: %v", input.ToEmail, err)
		return nil, deliveryFailed(err)
	}

	var leadID string
	if lead != nil {
		leadID = lead.ID
	}

	emailLog := entity.NewEmailLog(logID, input.UserID, leadID, input.ToEmail, subject, body, uc.now())
	if err := uc.LogRepo.Create(ctx, emailLog); err != nil {
		log.Printf("⚠️ CRITICAL: email %s enviado, mas falha ao gravar log: %v", logID, err)
		return nil, databaseError("email sent but failed to record log", err)
	}

	if lead != nil {
		uc.markLeadSent(ctx, lead)
	}

	log.Printf("✅ [SEND] email %s enviado para %s", logID, input.ToEmail)

	return &SendEmailOutput{
		Success: true,
		Message: "Email sent successfully",
		LogID:   logID,
	}, nil
}

// checkWarmup runs before any network I/O. Missing settings mean no warmup.
func (uc *SendEmailUseCase) checkWarmup(ctx context.Context, userID string) error {
	warmup, err := uc.WarmupRepo.FindByUserID(ctx, userID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil
	}
	if err != nil {
		return databaseError("failed to load warmup settings", err)
	}
	if !warmup.Enabled {
		return nil
	}

	now := uc.now()
	sentToday, err := uc.LogRepo.CountSentSince(ctx, userID, entity.StartOfUTCDay(now))
	if err != nil {
		return databaseError("failed to count today's emails", err)
	}

	decision := warmup.Evaluate(sentToday, now)
	if !decision.Allowed {
		log.Printf("🚦 [WARMUP] user=%s bloqueado: %s (enviados hoje=%d, limite=%d)",
			userID, decision.Reason, sentToday, warmup.CurrentDailyLimit)
		return rateLimited(decision.Reason)
	}
	return nil
}

// findLead only returns leads owned by userID. Anyone else's lead is treated
// as missing.
func (uc *SendEmailUseCase) findLead(ctx context.Context, userID, leadID string) *entity.Lead {
	if leadID == "" {
		return nil
	}
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			log.Printf("⚠️ [SEND] falha ao buscar lead %s: %v", leadID, err)
		}
		return nil
	}
	if lead.UserID != userID {
		log.Printf("🚫 [SEND] lead %s não pertence ao usuário %s, ignorando", leadID, userID)
		return nil
	}
	return lead
}

func (uc *SendEmailUseCase) markLeadSent(ctx context.Context, lead *entity.Lead) {
	var err error
	if uc.GuardLeadRegression {
		_, err = uc.LeadRepo.TransitionStatusUnless(ctx, lead.ID, entity.LeadStatusSent, entity.StatusesAbove(entity.LeadStatusSent))
	} else {
		err = uc.LeadRepo.UpdateStatus(ctx, lead.ID, entity.LeadStatusSent)
	}
	if err != nil {
		log.Printf("⚠️ [SEND] falha ao atualizar status do lead %s: %v", lead.ID, err)
	}
}

func (uc *SendEmailUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}
