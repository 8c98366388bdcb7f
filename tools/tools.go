//go:build tools

// Package tools pins code generators in go.mod.
package tools

import (
	_ "github.com/dmarkham/enumer"
	_ "go.uber.org/mock/mockgen"
)
