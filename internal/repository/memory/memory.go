// Package memory implements the repository interfaces on top of in-process
// maps. This is the default backend: all records live for the process
// lifetime only. Records are stored and returned by value, so callers can
// never mutate a stored record without going through Update, and each
// store guards its maps with a RWMutex, which is all the concurrency
// control a single process needs.
package memory

import "time"

// Store bundles every in-memory repository
type Store struct {
	Users    *UserStore
	Bookings *BookingStore
	Sessions *SessionStore
	Catalog  *CatalogStore
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		Users:    NewUserStore(),
		Bookings: NewBookingStore(),
		Sessions: NewSessionStore(),
		Catalog:  NewCatalogStore(),
	}
}

func now() time.Time {
	return time.Now().UTC()
}
