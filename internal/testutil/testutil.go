// Package testutil contains helpers shared by package tests.
package testutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pacer/internal/osutil"
)

// FixtureExport is the sample activity export, relative to the module root.
const FixtureExport = "testdata/activities.csv"

type GoldenTest interface {
	Output() ([]byte, string)
}

// Artifact is a file produced by a test, compared against
// testdata/<Name>.golden.
type Artifact struct {
	Name    string
	Content []byte
}

func (a Artifact) Output() (out []byte, name string) {
	return a.Content, a.Name
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap != nil {
		g.Assert(t, golden, snap)
		return
	}

	f := filepath.Join("testdata", golden+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
