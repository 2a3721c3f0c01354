package logic

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

type concurrentTransport struct {
	active    int32
	maxActive int32
	delay     time.Duration
}

func (t *concurrentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	current := atomic.AddInt32(&t.active, 1)

	for {
		max := atomic.LoadInt32(&t.maxActive)
		if current <= max {
			break
		}
		if atomic.CompareAndSwapInt32(&t.maxActive, max, current) {
			break
		}
	}

	time.Sleep(t.delay)

	atomic.AddInt32(&t.active, -1)

	return &http.Response{
		StatusCode: 201,
		Body:       http.NoBody,
	}, nil
}

func TestFlushSubtasksConcurrencyBound(t *testing.T) {
	transport := &concurrentTransport{
		delay: 10 * time.Millisecond,
	}
	client := api.NewClient("")
	client.SetHTTPClient(&http.Client{
		Transport: transport,
	})

	pending := make([]state.PendingSubtask, 50)
	for i := range pending {
		pending[i] = state.PendingSubtask{
			Title:  fmt.Sprintf("step %d", i),
			Status: api.StatusPending,
		}
	}

	parent := &api.Task{ID: 10, Title: "parent", DueDate: "2024-06-01"}
	if err := flushSubtasks(client, parent, pending, 1); err != nil {
		t.Fatalf("flushSubtasks: %v", err)
	}

	t.Logf("Max concurrent requests: %d", transport.maxActive)

	if transport.maxActive > maxConcurrentCreates {
		t.Errorf("expected max concurrency <= %d, got %d", maxConcurrentCreates, transport.maxActive)
	}
}
