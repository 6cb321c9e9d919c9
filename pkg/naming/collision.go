package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/constants"
	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// NextAvailableTarget resolves a collision-free target path for filename
// inside dir. When the name is taken it appends _1, _2, ... to the stem,
// re-probing existence before each attempt, until an unused name is
// found. The probe runs through the FileOps capability boundary so the
// check is local and verified, not delegated.
func NextAvailableTarget(ops interfaces.FileOps, dir, filename string) (string, error) {
	target := filepath.Join(dir, filename)
	exists, err := ops.Exists(target)
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to probe rename target")
	}
	if !exists {
		return target, nil
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for i := 1; i <= constants.MaxCollisionAttempts; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		exists, err := ops.Exists(candidate)
		if err != nil {
			return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to probe rename target")
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", utils.NewCollisionError(
		fmt.Sprintf("no free target name for %s after %d attempts", filename, constants.MaxCollisionAttempts), nil)
}
