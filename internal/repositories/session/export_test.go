package session

// HeldSessions reports how many sessions an in-memory repository holds,
// expired or not.
func HeldSessions(r Repository) int {
	m := r.(*inMemoryRepository)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
