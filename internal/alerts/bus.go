// Package alerts carries asynchronous store failures from the subscription
// layer to whichever surface wants to display them. Subscriptions cannot
// return errors to their caller once established, so adapters publish here
// instead and views listen, filtering by context.
package alerts

import (
	"sync"
)

// Context tags an event with the entity subscription it pertains to. Keeping
// this a closed enum (rather than free-form strings) means publishers and
// subscribers cannot silently disagree on the tag.
type Context string

const (
	ContextTenants    Context = "tenants"
	ContextCategories Context = "categories"
	ContextServices   Context = "services"
	ContextRequests   Context = "requests"
)

// ContextFor maps a collection name onto its alert context. Collection names
// and context values are deliberately identical.
func ContextFor(collection string) Context {
	return Context(collection)
}

const CodePermissionDenied = "permission-denied"

type Event struct {
	Context Context
	Code    string
	Message string
}

// Bus is a process-wide broadcast channel. Delivery is synchronous and
// best-effort; listeners filter by Context themselves.
type Bus struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[int]func(Event))}
}

// Subscribe registers fn for every published event and returns its
// deregistration func. Registration and deregistration must be paired or the
// listener leaks for the life of the process.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

func (b *Bus) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Default is the shared bus used when components are not handed one
// explicitly.
var Default = NewBus()

func Publish(e Event) {
	Default.Publish(e)
}

func Subscribe(fn func(Event)) func() {
	return Default.Subscribe(fn)
}
