package traversal

// contigStopper accepts wherever the path stops being unambiguous.
type contigStopper struct {
	limits Limits
}

func (s *contigStopper) observe(State) error { return nil }

func (s *contigStopper) HasSucceeded(st State) bool {
	return st.NumAdjacent != 1 || st.ChildrenAlreadyTraversed
}

func (s *contigStopper) HasFailed(st State) bool { return s.limits.exceeded(st) }

func (s *contigStopper) fork() Stopper {
	c := *s

	return &c
}

// bubbleStopper accepts on a joining color and rejects at a dead end short
// of one.
type bubbleStopper struct {
	limits Limits
}

func (s *bubbleStopper) observe(State) error { return nil }

func (s *bubbleStopper) HasSucceeded(st State) bool {
	return st.Depth > 0 && joined(st)
}

func (s *bubbleStopper) HasFailed(st State) bool {
	return s.limits.exceeded(st) || (deadEnd(st) && !s.HasSucceeded(st))
}

func (s *bubbleStopper) fork() Stopper {
	c := *s

	return &c
}

// tipStopper remembers whether the walk has left the joining colors.
type tipStopper struct {
	limits   Limits
	diverged bool
}

// observe flags the first vertex outside the joining colors.
func (s *tipStopper) observe(st State) error {
	if !joined(st) {
		s.diverged = true
	}

	return nil
}

func (s *tipStopper) HasSucceeded(st State) bool {
	return s.diverged && joined(st)
}

func (s *tipStopper) HasFailed(st State) bool {
	return s.limits.exceeded(st) || (deadEnd(st) && !s.HasSucceeded(st))
}

func (s *tipStopper) fork() Stopper {
	c := *s

	return &c
}

// dustStopper counts consecutive branching vertices along one path. A linear
// walk halts at its first branch, so the run only grows past 1 under DFS,
// where each branch forks the count.
type dustStopper struct {
	limits Limits
	run    int
}

func (s *dustStopper) observe(st State) error {
	if st.NumAdjacent > 1 {
		s.run++
	} else {
		s.run = 0
	}

	return nil
}

func (s *dustStopper) HasSucceeded(st State) bool {
	return (st.Depth > 0 && joined(st)) || deadEnd(st)
}

// HasFailed reports a run of DustRun branching vertices in a row.
func (s *dustStopper) HasFailed(st State) bool {
	return s.limits.exceeded(st) || (s.limits.DustRun > 0 && s.run >= s.limits.DustRun)
}

func (s *dustStopper) fork() Stopper {
	c := *s

	return &c
}

// orphanStopper remembers whether a joining color was ever touched and
// accepts once the path runs out of unvisited k-mers.
type orphanStopper struct {
	limits  Limits
	touched bool
}

func (s *orphanStopper) observe(st State) error {
	if joined(st) {
		s.touched = true
	}

	return nil
}

// HasSucceeded reports a dead end or a vertex whose candidates are all
// visited.
func (s *orphanStopper) HasSucceeded(st State) bool {
	return deadEnd(st) || st.ChildrenAlreadyTraversed
}

func (s *orphanStopper) HasFailed(st State) bool {
	return s.touched || s.limits.exceeded(st)
}

func (s *orphanStopper) fork() Stopper {
	c := *s

	return &c
}

// shoreStopper counts steps since the last k-mer found in the ROI graph and
// accepts ShoreDistance steps out.
type shoreStopper struct {
	limits Limits
	since  int
}

func (s *shoreStopper) observe(st State) error {
	in, err := inGraph(st.ROI, st.Vertex.Kmer)
	if err != nil {
		return err
	}
	if in {
		s.since = 0
	} else {
		s.since++
	}

	return nil
}

func (s *shoreStopper) HasSucceeded(st State) bool {
	return (s.limits.ShoreDistance > 0 && s.since >= s.limits.ShoreDistance) || deadEnd(st)
}

func (s *shoreStopper) HasFailed(st State) bool { return s.limits.exceeded(st) }

func (s *shoreStopper) fork() Stopper {
	c := *s

	return &c
}
