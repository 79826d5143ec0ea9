package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Version is the release string of the linkds binary.
var Version = strings.TrimSpace(raw)
