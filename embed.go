package main

import "embed"

// dataFS holds the YAML configuration. //go:embed only reaches files
// below this directory, so the declaration lives in the root package.
//
//go:embed data/*.yaml
var dataFS embed.FS
