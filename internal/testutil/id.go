package testutil

// FixedIDGenerator generates the same session ID every time.
//
// This enables deterministic reports and golden snapshot comparison.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed session ID generator.
//
// If id is empty, Generate() returns "test-session-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-session-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed session ID.
//
// Implements fixture.IDGenerator interface.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
