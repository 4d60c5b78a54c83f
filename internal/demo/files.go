package demo

import "embed"

// Files is the directory the demo suites are defined in. It holds the
// qa.prop and prod.prop profile files read by the cmdopt fixture.
//
//go:embed qa.prop prod.prop
var Files embed.FS
