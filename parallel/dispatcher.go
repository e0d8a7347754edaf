package parallel

import (
	"context"
	"sync"

	"github.com/databricks/databricks-sdk-go/logger"
)

// Tasks fans tasks out over a pool of workers and collects the results in
// completion order. The first mapper error cancels the remaining work and
// is returned; later errors are dropped.
func Tasks[T, R any](ctx context.Context, workers int, tasks []T, mapper func(context.Context, T) (R, error)) ([]R, error) {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := &pool[T, R]{
		mapper:  mapper,
		cancel:  cancel,
		work:    make(chan T),
		replies: make(chan R),
		errs:    make(chan error, 1),
	}
	go p.dispatch(ctx, tasks)
	var busy sync.WaitGroup
	for range workers {
		busy.Add(1)
		go func() {
			defer busy.Done()
			p.worker(ctx)
		}()
	}
	go func() {
		busy.Wait()
		close(p.replies)
	}()
	var chunks []R
	for reply := range p.replies {
		chunks = append(chunks, reply)
	}
	select {
	case err := <-p.errs:
		return nil, err
	default:
		return chunks, nil
	}
}

type pool[T, R any] struct {
	mapper  func(context.Context, T) (R, error)
	cancel  func()
	work    chan T
	replies chan R
	errs    chan error
}

func (p *pool[T, R]) dispatch(ctx context.Context, tasks []T) {
	defer close(p.work)
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			return
		case p.work <- task:
		}
	}
}

func (p *pool[T, R]) worker(ctx context.Context) {
	logger.Debugf(ctx, "Starting worker")
	for task := range p.work {
		result, err := p.mapper(ctx, task)
		if err != nil {
			logger.Errorf(ctx, "task failed: %s", err)
			select {
			case p.errs <- err:
			default:
			}
			p.cancel()
			continue
		}
		select {
		case <-ctx.Done():
			return
		case p.replies <- result:
		}
	}
}
