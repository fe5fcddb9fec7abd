//go:build !ebiten

package app

import (
	"fmt"

	"parlife/internal/core"
)

// Run reports that GUI support requires the ebiten build tag.
func Run(*Config, *core.Grid) error {
	return fmt.Errorf("app: -gui requires building with the 'ebiten' tag")
}
