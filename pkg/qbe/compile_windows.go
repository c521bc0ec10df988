//go:build windows

package qbe

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultTarget returns the QBE target of the running platform.
func DefaultTarget() string {
	return "amd64_sysv"
}

// Compile translates QBE IL to assembly for target. The embedded QBE is not
// available on Windows, so a qbe binary on PATH is used instead.
func Compile(il, target string) (string, error) {
	if target == "" {
		target = DefaultTarget()
	}
	if _, err := exec.LookPath("qbe"); err != nil {
		return "", fmt.Errorf("%w: qbe not found in PATH: %w", ErrCompile, err)
	}

	in, err := os.CreateTemp("", "tacc-*.ssa")
	if err != nil {
		return "", err
	}
	defer os.Remove(in.Name())
	defer in.Close()

	if _, err := in.WriteString(il); err != nil {
		return "", err
	}

	outName := in.Name() + ".s"
	defer os.Remove(outName)

	cmd := exec.Command("qbe", "-o", outName, "-t", target, in.Name())
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: %w: %s", ErrCompile, err, out)
	}

	asm, err := os.ReadFile(outName)
	if err != nil {
		return "", err
	}
	return string(asm), nil
}
