// Package notify buffers user-visible notices produced by background
// resolution, most importantly rate-tier downgrades. Clients poll the buffer
// and render notices for their configured display duration.
package notify

import (
	"sync"
	"time"
)

const defaultCapacity = 50

// Notice is one buffered message with its suggested display duration.
type Notice struct {
	Message   string        `json:"message"`
	Duration  time.Duration `json:"-"`
	DisplayMS int64         `json:"displayMs"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Center is a bounded in-memory notice buffer. It implements the resolver's
// notification sink; Notify never blocks and never fails.
type Center struct {
	mu      sync.Mutex
	notices []Notice
	cap     int
}

// NewCenter creates a Center holding at most capacity notices; older ones
// are dropped first. Non-positive capacity gets a sane default.
func NewCenter(capacity int) *Center {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Center{cap: capacity}
}

// Notify appends a notice to the buffer.
func (c *Center) Notify(message string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notices = append(c.notices, Notice{
		Message:   message,
		Duration:  duration,
		DisplayMS: duration.Milliseconds(),
		CreatedAt: time.Now(),
	})
	if len(c.notices) > c.cap {
		c.notices = c.notices[len(c.notices)-c.cap:]
	}
}

// Drain returns all buffered notices and empties the buffer. Each notice is
// delivered to at most one poll.
func (c *Center) Drain() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.notices
	c.notices = nil
	return out
}
