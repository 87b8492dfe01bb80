package symbols

// ScopeKind tags where a symbol was declared. The table itself is flat:
// scope is a label on the symbol, not a lookup tier.
type ScopeKind uint8

const (
	// ScopeGlobal is a let binding or a config-seeded value.
	ScopeGlobal ScopeKind = iota
	// ScopeForLocal is a for-loop iteration variable.
	ScopeForLocal
)

func (s ScopeKind) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeForLocal:
		return "for"
	}
	return "unknown"
}

// Symbol is one named declaration tracked during parsing.
type Symbol struct {
	Name  string
	Type  string
	Value string
	Scope ScopeKind
}
