package harness

import (
	"fmt"
	"path"

	"github.com/roach88/fixtura/internal/fixture"
)

type markKind int

const (
	markSkip markKind = iota
	markXFail
)

// Mark changes how a case (or every case of a suite) is run.
type Mark struct {
	kind   markKind
	cond   bool
	reason string
}

// Skip marks a case as skipped unconditionally.
func Skip(reason string) Mark {
	return Mark{kind: markSkip, cond: true, reason: reason}
}

// SkipIf marks a case as skipped when cond holds. The condition is
// evaluated when the mark is built, i.e. at collection time.
func SkipIf(cond bool, reason string) Mark {
	return Mark{kind: markSkip, cond: cond, reason: reason}
}

// XFail marks a case as expected to fail. A failing or erroring body is
// reported as xfailed, a passing one as xpassed.
func XFail(reason string) Mark {
	return Mark{kind: markXFail, cond: true, reason: reason}
}

// Body is a test case body. fx holds the resolved fixtures by name.
type Body func(t *T, fx fixture.Values)

// Case is a single test case.
type Case struct {
	Name string

	// Fixtures lists the fixtures resolved before Body runs, in order.
	Fixtures []string

	Marks []Mark
	Body  Body
}

// Suite is an ordered group of cases sharing one module.
type Suite struct {
	Module *fixture.Module

	// Marks apply to every case of the suite.
	Marks []Mark

	Cases []Case
}

// NodeID returns the identifier of a case within a suite, "module::case".
func (s Suite) NodeID(c Case) string {
	return s.Module.Name + "::" + c.Name
}

// ValidateSuites checks that every suite has a module and that every case
// has a name, a body and a unique node ID.
func ValidateSuites(suites []Suite) error {
	seen := make(map[string]bool)
	for i, s := range suites {
		if s.Module == nil || s.Module.Name == "" {
			return fmt.Errorf("suites[%d]: module with a name is required", i)
		}
		for j, c := range s.Cases {
			if c.Name == "" {
				return fmt.Errorf("%s.cases[%d]: name is required", s.Module.Name, j)
			}
			if c.Body == nil {
				return fmt.Errorf("%s: body is required", s.NodeID(c))
			}
			id := s.NodeID(c)
			if seen[id] {
				return fmt.Errorf("%s: duplicate test", id)
			}
			seen[id] = true
		}
	}
	return nil
}

// Collect returns the node IDs of all cases matching filter, in run order.
// An empty filter matches everything; otherwise filter is a path.Match
// pattern over node IDs.
func Collect(suites []Suite, filter string) ([]string, error) {
	if err := checkFilter(filter); err != nil {
		return nil, err
	}
	var ids []string
	for _, s := range suites {
		for _, c := range s.Cases {
			if matchFilter(filter, s.NodeID(c)) {
				ids = append(ids, s.NodeID(c))
			}
		}
	}
	return ids, nil
}

func checkFilter(filter string) error {
	if filter == "" {
		return nil
	}
	if _, err := path.Match(filter, ""); err != nil {
		return fmt.Errorf("invalid filter pattern %q: %w", filter, err)
	}
	return nil
}

func matchFilter(filter, nodeID string) bool {
	if filter == "" {
		return true
	}
	matched, _ := path.Match(filter, nodeID)
	return matched
}

// skipReason returns the reason of the first applicable skip mark.
func skipReason(marks []Mark) (string, bool) {
	for _, m := range marks {
		if m.kind == markSkip && m.cond {
			return m.reason, true
		}
	}
	return "", false
}

// xfailReason returns the reason of the first applicable xfail mark.
func xfailReason(marks []Mark) (string, bool) {
	for _, m := range marks {
		if m.kind == markXFail && m.cond {
			return m.reason, true
		}
	}
	return "", false
}
