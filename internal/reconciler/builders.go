// Package reconciler merges the catalog-derived and manually entered
// transaction streams into a single unified ledger with aggregate totals.
package reconciler

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/domain/catalog"
	"github.com/michaels22/GestorTechPlay/internal/domain/ledger"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"github.com/michaels22/GestorTechPlay/internal/money"
)

// buildDerivedEntries converts customer-plan and customer-product
// associations into synthetic ledger entries, accumulating totals as it
// goes. A customer yields zero, one, or two entries: an inflow for a
// resolvable plan and an outflow for a resolvable product. Records whose
// price fails to parse are dropped so malformed upstream strings cannot
// corrupt the aggregates.
func buildDerivedEntries(
	customers []*catalog.Customer,
	plans map[uuid.UUID]*catalog.Plan,
	products map[uuid.UUID]*catalog.Product,
	logger *slog.Logger,
) (entries []*ledger.Entry, totalInflow, totalOutflow float64) {
	for _, customer := range customers {
		timestamp := customer.CreatedAt
		if timestamp.IsZero() {
			timestamp = time.Now()
		}

		if customer.PlanID != nil {
			if plan, ok := plans[*customer.PlanID]; ok {
				amount, err := money.Parse(plan.Price)
				if err != nil {
					logger.Warn("Dropping plan entry with unparseable price",
						"customer_id", customer.ID.String(),
						"plan_id", plan.ID.String(),
						"price", plan.Price,
					)
				} else {
					entries = append(entries, &ledger.Entry{
						ID:           ledger.DerivedEntryID(transaction.DirectionInflow, customer.ID),
						Counterparty: customer.DisplayName,
						Direction:    transaction.DirectionInflow,
						Amount:       amount,
						Timestamp:    timestamp,
						DetailKind:   ledger.DetailKindPlan,
						Detail:       plan.DisplayName,
					})
					totalInflow += amount
				}
			}
		}

		if customer.ProductID != nil {
			if product, ok := products[*customer.ProductID]; ok {
				amount, err := money.Parse(product.Price)
				if err != nil {
					logger.Warn("Dropping product entry with unparseable price",
						"customer_id", customer.ID.String(),
						"product_id", product.ID.String(),
						"price", product.Price,
					)
				} else {
					entries = append(entries, &ledger.Entry{
						ID:           ledger.DerivedEntryID(transaction.DirectionOutflow, customer.ID),
						Counterparty: customer.DisplayName,
						Direction:    transaction.DirectionOutflow,
						Amount:       amount,
						Timestamp:    timestamp,
						DetailKind:   ledger.DetailKindProduct,
						Detail:       product.DisplayName,
					})
					totalOutflow += amount
				}
			}
		}
	}

	return entries, totalInflow, totalOutflow
}

// buildCustomEntries converts persisted custom transactions into ledger
// entries in store order, accumulating totals. The first description line
// becomes the counterparty label, the remaining lines joined by spaces become
// the detail. The raw description is retained for edit pre-population.
func buildCustomEntries(transactions []*transaction.CustomTransaction) (entries []*ledger.Entry, totalInflow, totalOutflow float64) {
	for _, tx := range transactions {
		// A stored amount that is not a finite number must not reach the
		// totals; drop the record the same way malformed prices are dropped.
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			continue
		}

		counterparty, detail := splitDescription(tx.Description)

		entries = append(entries, &ledger.Entry{
			ID:             tx.ID.String(),
			Counterparty:   counterparty,
			Direction:      tx.Direction,
			Amount:         tx.Amount,
			Timestamp:      tx.CreatedAt,
			DetailKind:     ledger.DetailKindCustom,
			Detail:         detail,
			RawDescription: tx.Description,
			IsCustom:       true,
		})

		if tx.Direction == transaction.DirectionInflow {
			totalInflow += tx.Amount
		} else {
			totalOutflow += tx.Amount
		}
	}

	return entries, totalInflow, totalOutflow
}

// splitDescription splits a free-text description into a counterparty label
// (first line) and a detail value (remaining lines joined by spaces), falling
// back to defaults when either part is empty.
func splitDescription(description string) (counterparty, detail string) {
	lines := strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")

	counterparty = strings.TrimSpace(lines[0])
	if counterparty == "" {
		counterparty = ledger.DefaultCounterparty
	}

	var rest []string
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line != "" {
			rest = append(rest, line)
		}
	}

	detail = strings.Join(rest, " ")
	if detail == "" {
		detail = ledger.DefaultDetail
	}

	return counterparty, detail
}
