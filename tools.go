//go:build tools

package main

// Keeps code-generation tools pinned in go.mod. The committed mocks under
// pkg/storage/mocks and pkg/storage/dynamodb/mocks are mockery output.
import (
	_ "github.com/vektra/mockery/v2"
)
