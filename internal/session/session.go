// Package session composes the catalog, the cart and the list pager into the
// state container a product management UI drives.
//
// Every operation is synchronous and completes before the next one observes
// state. Mutations that target a missing ID are silent no-ops and do not
// notify subscribers.
package session

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
	"github.com/vyrodovalexey/catalog-cart/internal/store"
	"github.com/vyrodovalexey/catalog-cart/internal/view"
)

// ErrCheckoutDisabled is returned by Checkout. Checkout performs no work.
var ErrCheckoutDisabled = errors.New("checkout not implemented")

// Notifier receives an event after every state change.
// Notify is called with the session lock held and must not call back into the session.
type Notifier interface {
	Notify(event model.ChangeEvent)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(event model.ChangeEvent)

// Notify calls f(event).
func (f NotifierFunc) Notify(event model.ChangeEvent) {
	f(event)
}

// Session owns one catalog, one cart and one pager.
type Session struct {
	mu       sync.Mutex
	catalog  store.ProductStore
	cart     store.CartStore
	pager    *view.Pager
	pageSize int
	version  uint64
	notifier Notifier
	logger   *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithNotifier sets the change notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		s.notifier = n
	}
}

// WithPageSize sets the initial list page size.
func WithPageSize(size int) Option {
	return func(s *Session) {
		s.pageSize = size
	}
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		catalog:  store.NewMemoryCatalog(),
		cart:     store.NewMemoryCart(),
		pageSize: view.DefaultPageSize,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pager = view.NewPager(s.pageSize)
	return s
}

// Reset empties the catalog and the cart and restores the initial list parameters.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.Reset()
	s.cart.Clear()
	s.pager = view.NewPager(s.pageSize)

	s.logger.Info("session reset")
	s.notifyLocked(model.EventSessionReset)
}

// notifyLocked must be called with s.mu held.
func (s *Session) notifyLocked(eventType string) {
	s.version++
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(model.NewChangeEvent(eventType, s.version, s.catalog.Len(), s.cart.Count()))
}

// Version returns the number of state changes since the session was created.
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.version
}

// Notifiers fans one event out to several notifiers in order.
type Notifiers []Notifier

// Notify forwards event to every notifier.
func (ns Notifiers) Notify(event model.ChangeEvent) {
	for _, n := range ns {
		if n != nil {
			n.Notify(event)
		}
	}
}
