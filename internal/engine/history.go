package engine

// appendHistory stamps id and timestamp and appends the entry. The log is
// append-only; nothing ever mutates or removes entries. Callers must hold e.mu.
func (e *Engine) appendHistory(entry HistoryEntry) {
	entry.ID = e.newID()
	entry.Timestamp = e.now()
	e.state.History = append(e.state.History, entry)
}

// History returns a copy of the history log, newest first.
func (e *Engine) History() []HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]HistoryEntry, len(e.state.History))
	for i, entry := range e.state.History {
		out[len(e.state.History)-1-i] = entry
	}
	return out
}
