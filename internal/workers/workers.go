// Package workers hosts the application's background processes. The only
// worker today is the mail dispatcher that delivers confirmation email
// outside the request/response cycle.
package workers

// Workers aggregates all background workers so that startup and shutdown
// handle them as a unit.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

// Run starts every worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker, blocking until each has drained.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
