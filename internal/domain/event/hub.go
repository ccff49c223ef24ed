// Package event implements scoped, synchronous listener registries.
//
// A Hub belongs to one scope (the whole layout, or a single pane) and keeps
// one listener map per event kind. Listener ids come from the same dense
// reuse pool as pane ids, independently for every kind.
package event

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/tilepane/internal/domain/idgen"
	"github.com/bnema/tilepane/internal/domain/result"
)

// ErrListenerNotFound is returned when unsubscribing an id that is not registered.
var ErrListenerNotFound = errors.New("listener not found")

// ListenerID addresses a callback within one (scope, kind) pair.
type ListenerID int

// Handler receives the payload of a notification.
type Handler[P any] func(P)

// Hub fans payloads out to the handlers registered for a kind.
// The zero value is not usable; create hubs with NewHub.
type Hub[K comparable, P any] struct {
	listeners map[K]map[ListenerID]Handler[P]
}

// NewHub creates an empty hub.
func NewHub[K comparable, P any]() *Hub[K, P] {
	return &Hub[K, P]{listeners: make(map[K]map[ListenerID]Handler[P])}
}

// Subscribe registers fn for kind and returns its listener id.
func (h *Hub[K, P]) Subscribe(kind K, fn Handler[P]) ListenerID {
	byID, ok := h.listeners[kind]
	if !ok {
		byID = make(map[ListenerID]Handler[P])
		h.listeners[kind] = byID
	}
	id := idgen.Next(byID)
	byID[id] = fn
	return id
}

// Unsubscribe removes the listener id registered for kind.
func (h *Hub[K, P]) Unsubscribe(kind K, id ListenerID) result.Result[result.Unit] {
	byID := h.listeners[kind]
	if _, ok := byID[id]; !ok {
		return result.Err[result.Unit](fmt.Errorf("%w: %v listener #%d", ErrListenerNotFound, kind, id))
	}
	delete(byID, id)
	return result.Done()
}

// Notify calls every handler registered for kind, in ascending listener id
// order. Handlers registered or removed during the fan-out do not affect the
// current round.
func (h *Hub[K, P]) Notify(kind K, payload P) {
	byID := h.listeners[kind]
	if len(byID) == 0 {
		return
	}
	ids := h.IDs(kind)
	handlers := make([]Handler[P], 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, byID[id])
	}
	for _, fn := range handlers {
		fn(payload)
	}
}

// IDs returns the listener ids registered for kind in ascending order.
func (h *Hub[K, P]) IDs(kind K) []ListenerID {
	byID := h.listeners[kind]
	ids := make([]ListenerID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of listeners registered for kind.
func (h *Hub[K, P]) Len(kind K) int {
	return len(h.listeners[kind])
}

// Clear drops every listener of every kind.
func (h *Hub[K, P]) Clear() {
	clear(h.listeners)
}
