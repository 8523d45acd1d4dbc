package memory

// kind identifies one id sequence.
type kind int

const (
	kindUser kind = iota
	kindChallenge
	kindPanel
	kindVote
	numKinds
)

// sequence hands out strictly increasing ids per kind, starting at 1.
// Ids are never reused. Callers hold the store lock.
type sequence struct {
	last [numKinds]int64
}

func (s *sequence) next(k kind) int64 {
	s.last[k]++
	return s.last[k]
}
