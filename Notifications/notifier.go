package Notifications

import (
	"log"
	"sync"
)

// Job is one outbound send, already bound to its arguments. The worker only
// cares about running it and logging the outcome.
type Job struct {
	Name string
	Run  func() error
}

// Notifier owns the background delivery queue. Handlers enqueue email and
// alert jobs and return immediately; a single worker goroutine drains the
// queue and runs each send to completion. Nothing is retried and no outcome
// reaches the original caller.
type Notifier struct {
	jobs chan Job
	wg   sync.WaitGroup
	once sync.Once
}

func NewNotifier(queueSize int) *Notifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Notifier{jobs: make(chan Job, queueSize)}
}

// Start launches the delivery worker.
func (n *Notifier) Start() {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for job := range n.jobs {
			if err := job.Run(); err != nil {
				log.Printf("notification %s failed: %v", job.Name, err)
			}
		}
	}()
}

// Enqueue hands a job to the worker without blocking the request path. A
// full queue drops the job with a log line; delivery here is best-effort.
func (n *Notifier) Enqueue(job Job) {
	select {
	case n.jobs <- job:
	default:
		log.Printf("notification queue full, dropping %s", job.Name)
	}
}

// Stop closes the queue and waits for in-flight sends to finish.
func (n *Notifier) Stop() {
	n.once.Do(func() {
		close(n.jobs)
	})
	n.wg.Wait()
}
