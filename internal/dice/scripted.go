package dice

import "sync"

// Scripted is a Source that replays a fixed list of draws, cycling when the
// list runs out. Each draw is clamped into [0, n). Used to make combat
// deterministic in tests and simulations.
type Scripted struct {
	mu     sync.Mutex
	values []int
	next   int
	calls  int
}

// NewScripted returns a Scripted source that yields values in order.
// With no values every draw is 0.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Intn returns the next scripted value clamped into [0, n).
func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Calls reports how many draws have been taken.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Max is a Source that always returns the highest value in range.
type Max struct{}

func (Max) Intn(n int) int { return n - 1 }

// Min is a Source that always returns 0.
type Min struct{}

func (Min) Intn(int) int { return 0 }
