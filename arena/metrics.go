package arena

// SizeInUse returns the number of bytes currently allocated in the arena.
// This includes internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	if a.buf == nil {
		return 0
	}
	return int(a.offset)
}

// Capacity returns the size of the region in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns how many bytes the next allocation can take.
func (a *Arena) Remaining() int {
	if a.buf == nil {
		return 0
	}
	off := alignPtr(a.offset)
	if off >= uintptr(len(a.buf)) {
		return 0
	}
	return len(a.buf) - int(off)
}

// HighWater returns the largest SizeInUse seen since the arena was created.
// Reset and Rewind do not lower it.
func (a *Arena) HighWater() int {
	return int(a.highWater)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		HighWater:   a.HighWater(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Region size in bytes
	Remaining   int     // Bytes available to the next allocation
	HighWater   int     // Peak bytes allocated
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of bytes currently allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the region size.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
