package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CardUtilization holds the derived credit figures of one card.
type CardUtilization struct {
	CardID uuid.UUID       `json:"card_id"`
	Name   string          `json:"name"`
	Limit  decimal.Decimal `json:"limit"`

	// InstallmentDebt is the remaining balance of the card's active
	// installment purchases; RealAvailable is the limit net of that debt.
	InstallmentDebt decimal.Decimal `json:"installment_debt"`
	RealAvailable   decimal.Decimal `json:"real_available"`

	// Used is the period's credit spending on the card.
	Used                decimal.Decimal `json:"used"`
	AvailableAfterUsage decimal.Decimal `json:"available_after_usage"`

	// BankAvailable is the externally reported available credit, carried
	// through for reconciliation display.
	BankAvailable decimal.Decimal `json:"bank_available"`
}

// CardUtilizationSummary aggregates per-card utilization for the wallet.
// The aggregate is always derived from the per-card figures.
type CardUtilizationSummary struct {
	PerCard []CardUtilization `json:"per_card"`

	TotalLimit           decimal.Decimal `json:"total_limit"`
	TotalInstallmentDebt decimal.Decimal `json:"total_installment_debt"`
	RealAvailable        decimal.Decimal `json:"real_available"`
	Used                 decimal.Decimal `json:"used"`
	AvailableAfterUsage  decimal.Decimal `json:"available_after_usage"`
}

// ComputeCardUtilization derives per-card and aggregate credit utilization.
// Installment debt only counts credit_card installments that are not paid
// off; transactions or installments referencing a card that no longer exists
// contribute to no card and are simply skipped.
func ComputeCardUtilization(
	snapshot *entity.WalletSnapshot,
	periodTransactions []*entity.Transaction,
) CardUtilizationSummary {
	summary := CardUtilizationSummary{
		PerCard:              make([]CardUtilization, 0, len(snapshot.CreditCards)),
		TotalLimit:           decimal.Zero,
		TotalInstallmentDebt: decimal.Zero,
		RealAvailable:        decimal.Zero,
		Used:                 decimal.Zero,
		AvailableAfterUsage:  decimal.Zero,
	}

	for _, card := range snapshot.CreditCards {
		utilization := CardUtilization{
			CardID:          card.ID,
			Name:            card.Name,
			Limit:           card.Limit,
			InstallmentDebt: decimal.Zero,
			Used:            decimal.Zero,
			BankAvailable:   card.BankAvailable,
		}

		for _, installment := range snapshot.Installments {
			if installment.Type != entity.InstallmentTypeCreditCard {
				continue
			}
			if installment.CardID == nil || *installment.CardID != card.ID {
				continue
			}
			state := ComputeInstallmentState(installment)
			if state.IsPaidOff {
				continue
			}
			utilization.InstallmentDebt = utilization.InstallmentDebt.Add(state.RemainingBalance)
		}

		for _, txn := range periodTransactions {
			if txn.Type != entity.TransactionTypeExpenseCredit {
				continue
			}
			if txn.CardID == nil || *txn.CardID != card.ID {
				continue
			}
			utilization.Used = utilization.Used.Add(txn.Amount)
		}

		utilization.RealAvailable = utilization.Limit.Sub(utilization.InstallmentDebt)
		utilization.AvailableAfterUsage = utilization.RealAvailable.Sub(utilization.Used)

		summary.PerCard = append(summary.PerCard, utilization)
		summary.TotalLimit = summary.TotalLimit.Add(utilization.Limit)
		summary.TotalInstallmentDebt = summary.TotalInstallmentDebt.Add(utilization.InstallmentDebt)
		summary.RealAvailable = summary.RealAvailable.Add(utilization.RealAvailable)
		summary.Used = summary.Used.Add(utilization.Used)
		summary.AvailableAfterUsage = summary.AvailableAfterUsage.Add(utilization.AvailableAfterUsage)
	}

	return summary
}
