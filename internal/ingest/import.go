package ingest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/ayoisaiah/pacer/internal/osutil"
)

// Import moves the export at src to dst, replacing any file already at dst.
// The move falls back to copy and delete when src and dst are on different
// filesystems.
func Import(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		slog.Info("moved export", slog.String("src", src), slog.String("dst", dst))
		return nil
	}

	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("moving export: %w", err)
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("moving export: %w", err)
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing %s after copy: %w", src, err)
	}

	slog.Info("copied export across filesystems", slog.String("src", src), slog.String("dst", dst))

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(
		dst,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return destFile.Close()
}
