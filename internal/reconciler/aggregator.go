package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/michaels22/GestorTechPlay/internal/domain/catalog"
	"github.com/michaels22/GestorTechPlay/internal/domain/ledger"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"golang.org/x/sync/errgroup"
)

// Aggregator performs the full fetch-parse-merge-sort cycle that produces a
// ledger report. It holds no state between loads; every load recomputes the
// ledger from scratch.
type Aggregator struct {
	catalogRepo catalog.Repository
	txRepo      transaction.Repository
	logger      *slog.Logger
}

// NewAggregator creates a new ledger aggregator
func NewAggregator(logger *slog.Logger, catalogRepo catalog.Repository, txRepo transaction.Repository) *Aggregator {
	return &Aggregator{
		catalogRepo: catalogRepo,
		txRepo:      txRepo,
		logger:      logger,
	}
}

// Load fetches the three catalog record sets concurrently plus the custom
// transactions, merges both entry streams, and returns the totals with the
// unified list sorted by descending timestamp. A catalog fetch failure is
// fatal for the load; a custom-transaction fetch failure is tolerated as an
// empty result so the ledger stays usable before the relation is provisioned.
func (a *Aggregator) Load(ctx context.Context) (*ledger.Report, error) {
	var (
		customers []*catalog.Customer
		plans     []*catalog.Plan
		products  []*catalog.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = a.catalogRepo.ListCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = a.catalogRepo.ListPlans(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = a.catalogRepo.ListProducts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("Failed to fetch catalog records", "error", err)
		return nil, fmt.Errorf("failed to fetch catalog records: %w", err)
	}

	transactions, err := a.txRepo.List(ctx)
	if err != nil {
		// The relation may not exist yet; derived totals stay available
		a.logger.Warn("Custom transaction fetch failed, treating as empty", "error", err)
		transactions = nil
	}

	derived, derivedIn, derivedOut := buildDerivedEntries(customers, catalog.PlansByID(plans), catalog.ProductsByID(products), a.logger)
	custom, customIn, customOut := buildCustomEntries(transactions)

	entries := make([]*ledger.Entry, 0, len(derived)+len(custom))
	entries = append(entries, derived...)
	entries = append(entries, custom...)

	// Two entries can carry the same timestamp at second granularity, so the
	// sort must be stable to keep their original relative order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	totalInflow := derivedIn + customIn
	totalOutflow := derivedOut + customOut

	report := &ledger.Report{
		TotalInflow:  totalInflow,
		TotalOutflow: totalOutflow,
		NetProfit:    totalInflow - totalOutflow,
		Entries:      entries,
	}

	a.logger.Debug("Ledger loaded",
		"entries", len(entries),
		"total_inflow", totalInflow,
		"total_outflow", totalOutflow,
	)

	return report, nil
}
