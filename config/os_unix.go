//go:build !windows

package config

import "os"

// enableVirtualTerminal is a no-op, terminals here understand escape
// sequences.
func enableVirtualTerminal(*os.File) bool {
	return true
}
