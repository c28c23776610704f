package report

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// Projection holds the expected figures for an upcoming period.
type Projection struct {
	Income       decimal.Decimal `json:"income"`
	Installments decimal.Decimal `json:"installments"`
	Budgets      decimal.Decimal `json:"budgets"`
}

// SpendingOutlook is the forward-looking buffer computation: how much of this
// period's cash flow must be reserved to cover a projected shortfall next
// period, and what remains freely spendable.
type SpendingOutlook struct {
	CashFlow           decimal.Decimal `json:"cash_flow"`
	Projection         Projection      `json:"projection"`
	ProjectedNet       decimal.Decimal `json:"projected_net"`
	BufferForNextMonth decimal.Decimal `json:"buffer_for_next_month"`
	AvailableToSpend   decimal.Decimal `json:"available_to_spend"`
}

// ComputeAvailableToSpend derives the spendable surplus from the period's
// cash flow and next period's projections. The buffer is only ever positive
// when the projection is a shortfall.
func ComputeAvailableToSpend(
	cashFlow decimal.Decimal,
	projectedIncome decimal.Decimal,
	projectedInstallments decimal.Decimal,
	projectedBudgets decimal.Decimal,
) SpendingOutlook {
	projectedNet := projectedIncome.Sub(projectedInstallments.Add(projectedBudgets))

	buffer := decimal.Zero
	if projectedNet.IsNegative() {
		buffer = projectedNet.Neg()
	}

	return SpendingOutlook{
		CashFlow: cashFlow,
		Projection: Projection{
			Income:       projectedIncome,
			Installments: projectedInstallments,
			Budgets:      projectedBudgets,
		},
		ProjectedNet:       projectedNet,
		BufferForNextMonth: buffer,
		AvailableToSpend:   cashFlow.Sub(buffer),
	}
}

// ProjectNextMonth computes the expected figures for the given period from
// the wallet snapshot: expected fixed incomes, installment dues still open
// for that period, and recurrent budget totals. Variable budgets are
// discretionary and carry no projected obligation.
func ProjectNextMonth(snapshot *entity.WalletSnapshot, period entity.Period) Projection {
	projection := Projection{
		Income:       decimal.Zero,
		Installments: decimal.Zero,
		Budgets:      decimal.Zero,
	}

	for _, income := range snapshot.FixedIncomes {
		projection.Income = projection.Income.Add(income.ExpectedAmount)
	}

	periodKey := period.Key()
	for _, installment := range PendingThisPeriod(snapshot.Installments, periodKey) {
		projection.Installments = projection.Installments.Add(ComputeInstallmentState(installment).MonthlyPayment)
	}

	for _, budget := range snapshot.Budgets {
		if budget.Type != entity.BudgetTypeRecurrent {
			continue
		}
		if budget.Category == entity.CategoryIncome || budget.Category == entity.CategoryDebtPayment {
			continue
		}
		projection.Budgets = projection.Budgets.Add(budget.EffectiveTotal())
	}

	return projection
}
