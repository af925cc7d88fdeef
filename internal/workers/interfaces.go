package workers

// Worker is the lifecycle contract for background processes managed by this
// package.
type Worker interface {
	// Run starts the worker's processing loop in a background goroutine and
	// returns immediately.
	Run()

	// Stop drains the worker and blocks until its loop has exited.
	Stop()
}
