package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// PeriodInfo identifies the reporting period of a dashboard result.
type PeriodInfo struct {
	Year  int    `json:"year"`
	Month int    `json:"month"` // 1-12
	Key   string `json:"key"`
}

// InstallmentOverview is one installment with its derived state.
type InstallmentOverview struct {
	ID                uuid.UUID              `json:"id"`
	Description       string                 `json:"description"`
	Type              entity.InstallmentType `json:"type"`
	CardID            *uuid.UUID             `json:"card_id,omitempty"`
	TotalAmount       decimal.Decimal        `json:"total_amount"`
	TotalInstallments int                    `json:"total_installments"`
	PaidInstallments  int                    `json:"paid_installments"`
	State             InstallmentState       `json:"state"`
	PendingThisPeriod bool                   `json:"pending_this_period"`
}

// DashboardOutput bundles every derived figure for one wallet and period.
type DashboardOutput struct {
	Period        PeriodInfo      `json:"period"`
	Totals        Totals          `json:"totals"`
	CashFlow      decimal.Decimal `json:"cash_flow"`
	ManualSurplus decimal.Decimal `json:"manual_surplus"`

	Budgets          []BudgetLineResult      `json:"budgets"`
	PendingRecurring PendingRecurringSummary `json:"pending_recurring"`

	Installments              []InstallmentOverview `json:"installments"`
	PendingInstallmentsCount  int                   `json:"pending_installments_count"`
	PendingInstallmentsAmount decimal.Decimal       `json:"pending_installments_amount"`

	Cards          CardUtilizationSummary `json:"cards"`
	Reconciliation Reconciliation         `json:"reconciliation"`
	Outlook        SpendingOutlook        `json:"outlook"`
}

// BuildDashboard computes every dashboard figure for the wallet snapshot and
// period. It is a pure function: the snapshot is read-only and each call
// recomputes fully rather than maintaining incremental aggregates.
func BuildDashboard(snapshot *entity.WalletSnapshot, period entity.Period) *DashboardOutput {
	periodKey := period.Key()
	periodTxns := SelectPeriod(snapshot.Transactions, period)

	totals := ComputeTotals(periodTxns)
	surplus := snapshot.Wallet.SurplusFor(periodKey)

	budgets, pendingRecurring := ComputeBudgetProgress(snapshot, periodTxns, periodKey)
	cards := ComputeCardUtilization(snapshot, periodTxns)

	appDebitBalance := totals.Income.Add(surplus).Sub(totals.DebitExpense)
	reconciliation := ComputeReconciliation(
		appDebitBalance,
		snapshot.Wallet.BankDebitBalance,
		cards.AvailableAfterUsage,
		snapshot.Wallet.BankCreditBalance,
	)

	installments := make([]InstallmentOverview, 0, len(snapshot.Installments))
	pendingInstallmentsCount := 0
	pendingInstallmentsAmount := decimal.Zero
	for _, installment := range snapshot.Installments {
		state := ComputeInstallmentState(installment)
		_, settled := installment.PaymentHistory[periodKey]
		pending := !state.IsPaidOff && !settled
		if pending {
			pendingInstallmentsCount++
			pendingInstallmentsAmount = pendingInstallmentsAmount.Add(state.MonthlyPayment)
		}
		installments = append(installments, InstallmentOverview{
			ID:                installment.ID,
			Description:       installment.Description,
			Type:              installment.Type,
			CardID:            installment.CardID,
			TotalAmount:       installment.TotalAmount,
			TotalInstallments: installment.TotalInstallments,
			PaidInstallments:  installment.PaidInstallments,
			State:             state,
			PendingThisPeriod: pending,
		})
	}

	projection := ProjectNextMonth(snapshot, period.Next())
	outlook := ComputeAvailableToSpend(
		totals.CashFlow(),
		projection.Income,
		projection.Installments,
		projection.Budgets,
	)

	return &DashboardOutput{
		Period: PeriodInfo{
			Year:  period.Year,
			Month: int(period.Month),
			Key:   periodKey,
		},
		Totals:                    totals,
		CashFlow:                  totals.CashFlow(),
		ManualSurplus:             surplus,
		Budgets:                   budgets,
		PendingRecurring:          pendingRecurring,
		Installments:              installments,
		PendingInstallmentsCount:  pendingInstallmentsCount,
		PendingInstallmentsAmount: pendingInstallmentsAmount,
		Cards:                     cards,
		Reconciliation:            reconciliation,
		Outlook:                   outlook,
	}
}

// validatePeriod checks a (year, month) selector.
func validatePeriod(year int, month time.Month) bool {
	return entity.Period{Year: year, Month: month}.IsValid()
}

func periodOf(year int, month time.Month) entity.Period {
	return entity.Period{Year: year, Month: month}
}
