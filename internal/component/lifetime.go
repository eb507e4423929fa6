// internal/component/lifetime.go
package component

// Lifetime schedules unconditional destruction of its entity.
type Lifetime struct {
	ExpiresAt float64
}

// Schedule keeps the earliest requested destruction time, so a later request can
// only shorten the remaining life.
func (l *Lifetime) Schedule(at float64) {
	if at < l.ExpiresAt {
		l.ExpiresAt = at
	}
}

// Expired reports whether the entity should be destroyed at now.
func (l *Lifetime) Expired(now float64) bool {
	return now >= l.ExpiresAt
}
