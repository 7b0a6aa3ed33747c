package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RefreshBroadcaster pushes table-refresh hints to connected dashboard
// clients, so the staff UI re-fetches instead of polling lead counts.
type RefreshBroadcaster struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewRefreshBroadcaster() *RefreshBroadcaster {
	return &RefreshBroadcaster{
		clients: make(map[chan string]bool),
	}
}

func (b *RefreshBroadcaster) Register(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *RefreshBroadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.clients[client] {
		delete(b.clients, client)
		close(client)
	}
}

// NotifyRefresh tells every client which table changed ("website_leads" or
// "appointments"). Delivery runs off the caller's goroutine so a stalled
// dashboard cannot delay a booking response; clients that stall for a second
// get dropped.
func (b *RefreshBroadcaster) NotifyRefresh(table string) {
	go func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for client := range b.clients {
			select {
			case client <- table:
			case <-time.After(1 * time.Second):
				delete(b.clients, client)
				close(client)
			}
		}
	}()
}

var Broadcaster = NewRefreshBroadcaster()

func Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientChan := make(chan string)
	Broadcaster.Register(clientChan)
	defer Broadcaster.Unregister(clientChan)

	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()

	for {
		select {
		case table, ok := <-clientChan:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "event: refresh\ndata: %s\n\n", table)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
