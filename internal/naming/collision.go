package naming

// Tracker records which record first claimed each computed output path
// during one split, so the splitter can warn when a later record computes
// the same name. Colliding records still overwrite earlier output; the
// tracker only makes the overwrite visible. One Tracker per input file.
type Tracker struct {
	owners map[string]int // output path → 1-based record ordinal that claimed it
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{owners: make(map[string]int)}
}

// Claim registers path for the given record ordinal. If the path was
// already claimed, Claim reports the first owner and collided=true without
// reassigning ownership.
func (t *Tracker) Claim(path string, record int) (firstOwner int, collided bool) {
	if first, ok := t.owners[path]; ok {
		return first, true
	}
	t.owners[path] = record
	return record, false
}
