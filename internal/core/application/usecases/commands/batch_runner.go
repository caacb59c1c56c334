package commands

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// defaultBatchWorkers bounds the number of orders processed concurrently
// within one batch. Each worker holds at most one database transaction.
const defaultBatchWorkers = 8

// orderStep mutates one loaded aggregate. A returned error fails that order
// only; the runner records its machine code and moves on.
type orderStep func(ctx context.Context, aggregate *order.Order) error

// afterOrderCommit runs after one order's transaction committed, outside
// any transaction. Used for fire-and-forget notification dispatch.
type afterOrderCommit func(ctx context.Context, aggregate *order.Order, previous order.Status)

// batchRunner executes one step against many orders with per-order isolation.
// All orders are loaded in a single fetch, then processed concurrently by a
// bounded worker pool. Every order gets its own transaction, so a rejected or
// conflicting order never rolls back a sibling. Results keep the caller's
// supplied ID order; IDs missing from the tenant's data are reported as
// not found without stopping the batch.
type batchRunner struct {
	uowFactory  OrderUoWFactory
	workers     int
	precheck    orderStep
	afterCommit afterOrderCommit
}

func newBatchRunner(uowFactory OrderUoWFactory, afterCommit afterOrderCommit) batchRunner {
	return batchRunner{
		uowFactory:  uowFactory,
		workers:     defaultBatchWorkers,
		afterCommit: afterCommit,
	}
}

// withPrecheck installs a read-only check that runs before an order's
// transaction is opened. Orders it rejects are recorded as failed without
// ever touching the database.
func (r batchRunner) withPrecheck(precheck orderStep) batchRunner {
	r.precheck = precheck
	return r
}

func (r batchRunner) run(
	ctx context.Context,
	tenantID kernel.UUID,
	orderIDs []kernel.UUID,
	step orderStep,
) (BatchOperationResult, error) {
	repo := r.uowFactory.Create().OrderRepository()
	aggregates, err := repo.GetByIDs(ctx, tenantID, orderIDs)
	if err != nil {
		return BatchOperationResult{}, err
	}

	byID := make(map[string]*order.Order, len(aggregates))
	for _, aggregate := range aggregates {
		byID[aggregate.ID().String()] = aggregate
	}

	// Positions sharing an ID are processed sequentially by one worker:
	// an aggregate must never be mutated from two goroutines.
	positionsByID := make(map[string][]int, len(orderIDs))
	keys := make([]string, 0, len(orderIDs))
	for idx, orderID := range orderIDs {
		key := orderID.String()
		if _, seen := positionsByID[key]; !seen {
			keys = append(keys, key)
		}
		positionsByID[key] = append(positionsByID[key], idx)
	}

	results := make([]OrderOperationResult, len(orderIDs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	for _, key := range keys {
		positions := positionsByID[key]
		aggregate, found := byID[key]
		if !found {
			for _, idx := range positions {
				results[idx] = newMissingResult(orderIDs[positions[0]])
			}
			continue
		}

		group.Go(func() error {
			for _, idx := range positions {
				results[idx] = r.processOne(groupCtx, aggregate, step)
			}
			return nil
		})
	}

	// Workers never return errors; per-order failures live in the results.
	_ = group.Wait()

	batch := BatchOperationResult{
		Processed: len(orderIDs),
		Results:   results,
	}
	for _, result := range results {
		if result.Success {
			batch.Succeeded++
		} else {
			batch.Failed++
		}
	}

	return batch, nil
}

func (r batchRunner) processOne(
	ctx context.Context,
	aggregate *order.Order,
	step orderStep,
) OrderOperationResult {
	previous := aggregate.Status()

	if r.precheck != nil {
		if err := r.precheck(ctx, aggregate); err != nil {
			return newFailedResult(aggregate, previous, err)
		}
	}

	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return newFailedResult(aggregate, previous, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := step(ctx, aggregate); err != nil {
		return newFailedResult(aggregate, previous, err)
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return newFailedResult(aggregate, previous, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return newFailedResult(aggregate, previous, err)
	}

	if r.afterCommit != nil {
		r.afterCommit(ctx, aggregate, previous)
	}

	return newSucceededResult(aggregate, previous)
}
