package pagefx

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed pagefx.toml
var DefaultConfig string
