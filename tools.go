//go:build tools

package lattice

import (
	_ "golang.org/x/tools/cmd/stringer"
)
