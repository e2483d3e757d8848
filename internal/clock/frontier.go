package clock

// Stamp is a vector-clock observation attributed to the process that
// reported it.
type Stamp struct {
	Owner  string
	Vector VectorClock
}

// Frontier reduces a set of stamps to its causal frontier: the maximal
// set of observations not dominated by any other. Stamps whose vectors
// compare Before some other stamp are dropped; of stamps with equal
// vectors only the first is kept. The input is not mutated.
//
// If len(result) == 1 the observations form a single causal chain; a
// larger result means genuinely concurrent observations.
func Frontier(stamps []Stamp) []Stamp {
	if len(stamps) == 0 {
		return []Stamp{}
	}

	frontier := make([]Stamp, 0, len(stamps))
	for i, s := range stamps {
		dominated := false
		for j, other := range stamps {
			if i == j {
				continue
			}
			if s.Vector.Compare(other.Vector) == Before {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}

		duplicate := false
		for _, kept := range frontier {
			if s.Vector.Equal(kept.Vector) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			frontier = append(frontier, s)
		}
	}
	return frontier
}
