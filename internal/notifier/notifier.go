package notifier

import (
	"runtime/debug"
	"sync"

	"github.com/wb-go/wbf/logger"
)

// Callback observes store changes. Callbacks receive no payload and
// re-read state themselves.
type Callback func()

type subscription struct {
	id uint64
	fn Callback
}

// Notifier is an in-process publish/subscribe registry. One instance
// is wired per store so tests can construct isolated stores; there is
// no package-level subscriber list.
type Notifier struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
	logger logger.Logger
}

func New(log logger.Logger) *Notifier {
	return &Notifier{logger: log}
}

// Subscribe registers fn and returns its unsubscribe function.
// Unsubscribing twice is a no-op. Both are safe to call from inside a
// running Notify pass.
func (n *Notifier) Subscribe(fn Callback) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, fn: fn})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify invokes every subscribed callback synchronously in
// subscription order. The pass runs over a stable snapshot, so
// subscribing or unsubscribing mid-pass cannot corrupt it, and a
// panicking callback never blocks the remaining ones.
func (n *Notifier) Notify() {
	n.mu.Lock()
	snapshot := make([]subscription, len(n.subs))
	copy(snapshot, n.subs)
	n.mu.Unlock()

	for _, s := range snapshot {
		n.invoke(s)
	}
}

func (n *Notifier) invoke(s subscription) {
	defer func() {
		if err := recover(); err != nil {
			n.logger.Error("listener panic recovered",
				logger.Any("error", err),
				logger.String("stack", string(debug.Stack())),
			)
		}
	}()

	s.fn()
}
