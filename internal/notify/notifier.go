// Package notify is the transient-notification surface: the client-side
// equivalent of the reference UI's dismissable toasts.
package notify

import (
	"sync"

	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
)

// Notifier receives user-visible transient notices. Mutation failures are
// reported here and never abort the surrounding page.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier emits notices through the structured logger.
type LogNotifier struct {
	log *observability.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: observability.Component("notify")}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info(msg)
}

func (n *LogNotifier) Error(msg string) {
	n.log.Error(msg)
}

// Recorder captures notices for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}
