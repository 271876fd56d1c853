package repositories

import (
	"sync"

	"servermart/internal/models"
)

// OrderLog records confirmed orders for the lifetime of the process. There
// is no durable order storage; the log makes confirmed orders, including
// duplicates from repeated submissions, observable while the service runs.
type OrderLog struct {
	records []models.OrderRecord
	mu      sync.RWMutex
}

// NewOrderLog creates an empty order log.
func NewOrderLog() *OrderLog {
	return &OrderLog{}
}

// Append adds a confirmed order to the log.
func (l *OrderLog) Append(record models.OrderRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

// All returns every recorded order in confirmation order.
func (l *OrderLog) All() []models.OrderRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.OrderRecord, len(l.records))
	copy(out, l.records)
	return out
}

// BySession returns all orders confirmed under the given session token.
func (l *OrderLog) BySession(sessionID string) []models.OrderRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []models.OrderRecord
	for _, r := range l.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out
}
