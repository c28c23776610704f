package email

import (
	"context"
	"fmt"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueBudgetAlert queues a critical-threshold alert email.
func (s *Service) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Presupuesto de %s al %s%% - Wallet Tracker", input.Category, input.Percentage)

	templateData := map[string]interface{}{
		"user_name":   input.RecipientName,
		"wallet_name": input.WalletName,
		"category":    input.Category,
		"period_key":  input.PeriodKey,
		"spent":       input.Spent,
		"total":       input.Total,
		"percentage":  input.Percentage,
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert email",
			err,
		)
	}
	return nil
}

// Ensure Service implements adapter.BudgetAlertNotifier.
var _ adapter.BudgetAlertNotifier = (*Service)(nil)
