package simkernel

import "sort"

// EventList holds EventNotice values ordered by ascending time, ties broken
// by insertion order (FIFO). A linear insert is O(n); event lists in
// practice stay small enough (bounded by in-flight processes and pending
// resource requests) that this is not a bottleneck, and it keeps
// removal-by-identity and tie ordering trivial to reason about.
type EventList struct {
	items []EventNotice
}

// NewEventList returns an empty list.
func NewEventList() *EventList {
	return &EventList{}
}

// IsEmpty reports whether the list holds no notices.
func (l *EventList) IsEmpty() bool { return len(l.items) == 0 }

// Len reports how many notices are on the list.
func (l *EventList) Len() int { return len(l.items) }

// Insert places e in time order, after any existing notices at the same
// time (preserving FIFO among ties).
func (l *EventList) Insert(e EventNotice) {
	t := e.Time()
	for i, existing := range l.items {
		if existing.Time() > t {
			l.items = append(l.items, nil)
			copy(l.items[i+1:], l.items[i:])
			l.items[i] = e
			return
		}
	}
	l.items = append(l.items, e)
}

// Remove deletes e by identity. It reports whether e was found.
func (l *EventList) Remove(e EventNotice) bool {
	for i, existing := range l.items {
		if existing == e {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether e is currently on the list, by identity.
func (l *EventList) Has(e EventNotice) bool {
	for _, existing := range l.items {
		if existing == e {
			return true
		}
	}
	return false
}

// ImminentTime returns the time of the head notice. Callers must check
// IsEmpty first.
func (l *EventList) ImminentTime() float64 {
	return l.items[0].Time()
}

// PopImminent removes and returns the single notice at the head of the
// list.
func (l *EventList) PopImminent() EventNotice {
	e := l.items[0]
	l.items = l.items[1:]
	return e
}

// PopImminentGroup removes and returns every notice tied for the earliest
// time at the head of the list. When tieBreakByPriority is set, the group
// is sorted by descending priority (stable, so FIFO order among equal
// priorities is preserved) before being returned.
func (l *EventList) PopImminentGroup(tieBreakByPriority bool) []EventNotice {
	if l.IsEmpty() {
		return nil
	}
	t := l.items[0].Time()
	n := 0
	for n < len(l.items) && l.items[n].Time() == t {
		n++
	}
	group := append([]EventNotice(nil), l.items[:n]...)
	l.items = l.items[n:]
	if tieBreakByPriority {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Priority() > group[j].Priority()
		})
	}
	return group
}

// RemoveAll clears the list.
func (l *EventList) RemoveAll() {
	l.items = nil
}

// Snapshot returns a copy of the list's contents in current order, for
// introspection (tests, trace dumps). Callers must not mutate the result.
func (l *EventList) Snapshot() []EventNotice {
	out := make([]EventNotice, len(l.items))
	copy(out, l.items)
	return out
}
