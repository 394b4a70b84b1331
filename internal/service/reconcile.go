package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
)

// duePersister is the single write operation the reconciliation policies need
// from the persistence collaborator.
type duePersister interface {
	UpdateDueDate(ctx context.Context, id string, due time.Time) error
}

// reconcilePolicy governs when a board's local due-date edits reach the store.
// applyDrop, dirty and cancel are called with the board lock held; save manages
// its own locking because its writes run off-lock so the board stays usable
// while a batch is in flight.
type reconcilePolicy interface {
	applyDrop(ctx context.Context, b *board, a *models.Assignment, due time.Time) error
	dirty(b *board) []string
	save(ctx context.Context, b *board) (int, error)
	cancel(b *board)
}

// immediatePolicy persists each drop straight away and rolls the local value
// back when the write fails.
type immediatePolicy struct {
	persister duePersister
	logger    *zap.Logger
}

func (p *immediatePolicy) applyDrop(ctx context.Context, b *board, a *models.Assignment, due time.Time) error {
	prev := a.DueDate
	a.DueDate = due
	if err := p.persister.UpdateDueDate(ctx, a.ID, due); err != nil {
		a.DueDate = prev
		p.logger.Warn("due date update failed, rolled back",
			zap.String("board_id", b.id),
			zap.String("assignment_id", a.ID),
			zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrPersistFailed.Code, appErrors.ErrPersistFailed.Status, "failed to reschedule assignment")
	}
	b.snapshot[a.ID] = due
	return nil
}

func (p *immediatePolicy) dirty(*board) []string { return nil }

func (p *immediatePolicy) save(context.Context, *board) (int, error) { return 0, nil }

func (p *immediatePolicy) cancel(*board) {}

// stagedPolicy buffers drops locally and persists the whole dirty set on an
// explicit save. A failed save leaves the board dirty; there is no per-item
// rollback, the user retries or cancels.
type stagedPolicy struct {
	persister duePersister
	logger    *zap.Logger
}

func (p *stagedPolicy) applyDrop(_ context.Context, _ *board, a *models.Assignment, due time.Time) error {
	a.DueDate = due
	return nil
}

func (p *stagedPolicy) dirty(b *board) []string {
	var ids []string
	for _, id := range b.order {
		a := b.assignments[id]
		if prev, ok := b.snapshot[id]; ok && !a.DueDate.Equal(prev) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (p *stagedPolicy) save(ctx context.Context, b *board) (int, error) {
	b.mu.Lock()
	if b.saving {
		b.mu.Unlock()
		return 0, appErrors.ErrSaveInProgress
	}
	pending := make(map[string]time.Time)
	for _, id := range p.dirty(b) {
		pending[id] = b.assignments[id].DueDate
	}
	if len(pending) == 0 {
		b.mu.Unlock()
		return 0, nil
	}
	b.saving = true
	b.mu.Unlock()

	// Independent concurrent writes: no ordering between them and no atomicity
	// across the batch. A partial failure leaves some rows updated.
	var wg sync.WaitGroup
	errCh := make(chan error, len(pending))
	for id, due := range pending {
		wg.Add(1)
		go func(id string, due time.Time) {
			defer wg.Done()
			if err := p.persister.UpdateDueDate(ctx, id, due); err != nil {
				p.logger.Warn("batch save item failed",
					zap.String("board_id", b.id),
					zap.String("assignment_id", id),
					zap.Error(err))
				errCh <- err
			}
		}(id, due)
	}
	wg.Wait()
	close(errCh)
	saveErr := <-errCh

	b.mu.Lock()
	b.saving = false
	if saveErr == nil {
		for id, due := range pending {
			b.snapshot[id] = due
		}
	}
	b.mu.Unlock()

	if saveErr != nil {
		return 0, appErrors.Wrap(saveErr, appErrors.ErrPersistFailed.Code, appErrors.ErrPersistFailed.Status, "failed to save schedule changes")
	}
	return len(pending), nil
}

func (p *stagedPolicy) cancel(b *board) {
	for id, due := range b.snapshot {
		if a, ok := b.assignments[id]; ok {
			a.DueDate = due
		}
	}
}
