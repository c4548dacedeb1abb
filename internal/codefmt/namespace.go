package codefmt

import (
	"go/token"
	"go/types"
	"iter"
	"strconv"
)

// NS is a set of taken identifiers.
type NS map[string]struct{}

// NewNS creates a namespace holding every name declared in scope.
func NewNS(scope *types.Scope) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		ns.Reserve(name)
	}
	return ns
}

// Reserve takes name. It reports false if name was already taken.
func (ns NS) Reserve(name string) bool {
	if ns.Has(name) {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Has reports whether name is taken.
func (ns NS) Has(name string) bool {
	_, ok := ns[name]
	return ok
}

// Name takes and returns the first free identifier among name, name2,
// name3 and so on. A name ending with a digit is numbered after an
// underscore, like index1_2. A nil namespace returns name as is.
func (ns NS) Name(name string) string {
	if name == "" {
		panic("codefmt: empty name")
	}
	if ns == nil || token.IsKeyword(name) {
		return name
	}
	for candidate := range candidates(name) {
		if ns.Reserve(candidate) {
			return candidate
		}
	}
	panic("unreachable")
}

// candidates yields name followed by its numbered alternatives.
func candidates(name string) iter.Seq[string] {
	sep := ""
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		sep = "_"
	}
	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; ; i++ {
			if !yield(name + sep + strconv.Itoa(i)) {
				return
			}
		}
	}
}
