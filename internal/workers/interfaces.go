// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn goroutines internally and return,
// so the aggregate can start every registered worker in order.
//
// Example implementation:
//
//	type EventPublisher struct{}
//
//	func (p *EventPublisher) Run() {
//	    go p.consumeMailbox()
//	}
type Worker interface {
	Run()
}
