//go:build !windows

package qbe

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"modernc.org/libqbe"
)

// DefaultTarget returns the QBE target of the running platform.
func DefaultTarget() string {
	return libqbe.DefaultTarget(runtime.GOOS, runtime.GOARCH)
}

// Compile translates QBE IL to assembly for target with the embedded QBE.
// An empty target means DefaultTarget.
func Compile(il, target string) (string, error) {
	if target == "" {
		target = DefaultTarget()
	}

	var asmBuf bytes.Buffer
	if err := libqbe.Main(target, "input.ssa", strings.NewReader(il), &asmBuf, nil); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return asmBuf.String(), nil
}
