package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetByID retrieves a specific job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// DeleteOldSentJobs removes sent jobs older than the specified number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueBudgetAlertInput carries the figures shown in a budget alert email.
type QueueBudgetAlertInput struct {
	RecipientEmail string
	RecipientName  string
	WalletName     string
	Category       string
	PeriodKey      string
	Spent          string
	Total          string
	Percentage     string
}

// BudgetAlertNotifier defines the interface for queueing budget threshold alerts.
type BudgetAlertNotifier interface {
	// QueueBudgetAlert queues a critical-threshold alert email.
	QueueBudgetAlert(ctx context.Context, input QueueBudgetAlertInput) error
}
