package solver

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Requirements is a fixed-shape bag of non-negative counters, one per
// requirement axis. Subtraction saturates at zero: requesting more than
// available sets the counter to zero without error.
type Requirements struct {
	Reactors  int
	Thrusters int
	Shields   int
	Damage    int
	Crew      int
}

func saturatingSub(have, n int) int {
	if n >= have {
		return 0
	}
	return have - n
}

// SubReactors returns Requirements with the reactors counter reduced by n,
// saturating at zero.
func (r Requirements) SubReactors(n int) Requirements {
	r.Reactors = saturatingSub(r.Reactors, n)
	return r
}

// SubThrusters returns Requirements with the thrusters counter reduced by
// n, saturating at zero.
func (r Requirements) SubThrusters(n int) Requirements {
	r.Thrusters = saturatingSub(r.Thrusters, n)
	return r
}

// SubShields returns Requirements with the shields counter reduced by n,
// saturating at zero.
func (r Requirements) SubShields(n int) Requirements {
	r.Shields = saturatingSub(r.Shields, n)
	return r
}

// SubDamage returns Requirements with the damage counter reduced by n,
// saturating at zero.
func (r Requirements) SubDamage(n int) Requirements {
	r.Damage = saturatingSub(r.Damage, n)
	return r
}

// SubCrew returns Requirements with the crew counter reduced by n,
// saturating at zero.
func (r Requirements) SubCrew(n int) Requirements {
	r.Crew = saturatingSub(r.Crew, n)
	return r
}

// IsEmpty reports whether every counter is zero.
func (r Requirements) IsEmpty() bool {
	return r.Reactors == 0 && r.Thrusters == 0 && r.Shields == 0 && r.Damage == 0 && r.Crew == 0
}

// Equal reports field-wise equality. Requirements is a plain comparable
// struct, so this is equivalent to r == other.
func (r Requirements) Equal(other Requirements) bool {
	return r == other
}

// Hash returns a field-wise hash of the counters.
func (r Requirements) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%d:%d:%d", r.Reactors, r.Thrusters, r.Shields, r.Damage, r.Crew)
	return h.Sum64()
}

type requirementAxis struct {
	letter string
	color  int
	count  int
}

// String joins the non-zero axes with ", ", each rendered as "<letter>x
// <count>" (x is U+00D7). When color is true, each letter is wrapped in
// an ANSI SGR escape for its axis.
func (r Requirements) String(color bool) string {
	axes := []requirementAxis{
		{"R", 34, r.Reactors},
		{"T", 36, r.Thrusters},
		{"S", 33, r.Shields},
		{"D", 31, r.Damage},
		{"C", 32, r.Crew},
	}

	var parts []string
	for _, a := range axes {
		if a.count == 0 {
			continue
		}
		letter := a.letter
		if color {
			letter = fmt.Sprintf("\x1b[%dm%s\x1b[0m", a.color, a.letter)
		}
		parts = append(parts, fmt.Sprintf("%s×%d", letter, a.count))
	}
	return strings.Join(parts, ", ")
}
