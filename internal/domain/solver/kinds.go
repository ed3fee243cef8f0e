package solver

// Built-in CardKinds. These are process-wide constants registered once at
// package init; callers may register additional kinds with
// RegisterCardKind and give them transition operators via a Registry.
//
// ANSI SGR color codes: 34 blue, 36 cyan, 33 yellow, 31 red, 90 dim gray,
// 32 green.
var (
	Reactor  = RegisterCardKind("reactor", "R", 34, 0)
	Thruster = RegisterCardKind("thruster", "T", 36, 1)
	Shield   = RegisterCardKind("shield", "S", 33, 2)
	Damage   = RegisterCardKind("damage", "D", 31, 3)
	Miss     = RegisterCardKind("miss", "M", 90, 4)
	Crew     = RegisterCardKind("crew", "C", 32, 5)
)
