package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	"github.com/wallet-tracker/backend/internal/integration/email/templates"
)

// memoryQueue is an in-memory adapter.EmailQueueRepository for worker tests.
type memoryQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return job, nil
}

func (q *memoryQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

func queueAlert(t *testing.T, queue *memoryQueue) *entity.EmailJob {
	t.Helper()

	service := NewService(queue)
	err := service.QueueBudgetAlert(context.Background(), adapter.QueueBudgetAlertInput{
		RecipientEmail: "ana@example.com",
		RecipientName:  "Ana",
		WalletName:     "Principal",
		Category:       "Supermercado",
		PeriodKey:      "2026-01",
		Spent:          "95000.00",
		Total:          "100000.00",
		Percentage:     "95.0",
	})
	if err != nil {
		t.Fatalf("QueueBudgetAlert() error = %v", err)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1", len(queue.jobs))
	}
	for _, job := range queue.jobs {
		return job
	}
	return nil
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender adapter.EmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorker_SendsQueuedBudgetAlert(t *testing.T) {
	queue := newMemoryQueue()
	job := queueAlert(t, queue)
	sender := NewMockEmailSender()

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusSent {
		t.Fatalf("job status = %q, want sent", job.Status)
	}
	if job.ResendID == "" {
		t.Error("sent job has no provider ID")
	}
	if len(sender.SentEmails) != 1 {
		t.Fatalf("sent emails = %d, want 1", len(sender.SentEmails))
	}

	sent := sender.SentEmails[0]
	if sent.To != "ana@example.com" {
		t.Errorf("recipient = %q, want ana@example.com", sent.To)
	}
	if !strings.Contains(sent.HTML, "Supermercado") || !strings.Contains(sent.HTML, "95000.00") {
		t.Error("rendered HTML is missing the alert figures")
	}
	if !strings.Contains(sent.Text, "2026-01") {
		t.Error("rendered text is missing the period key")
	}
}

func TestWorker_TransientFailureSchedulesRetry(t *testing.T) {
	queue := newMemoryQueue()
	job := queueAlert(t, queue)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("connection reset"), false)

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusPending {
		t.Fatalf("job status = %q, want pending for retry", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}
}

func TestWorker_PermanentFailureStopsRetrying(t *testing.T) {
	queue := newMemoryQueue()
	job := queueAlert(t, queue)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation error"), true)

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("job status = %q, want failed", job.Status)
	}

	sender.ClearFailure()
	newTestWorker(t, queue, sender).ProcessNow(context.Background())
	if len(sender.SentEmails) != 0 {
		t.Error("permanently failed job was retried")
	}
}
