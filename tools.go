//go:build tools
// +build tools

// Package tools pins tool dependencies (mockgen) in go.mod.
package paprcup

import (
	_ "go.uber.org/mock/mockgen"
)
