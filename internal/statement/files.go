package statement

import (
	"fmt"
	"os"
	"path/filepath"
)

// statementsDir is the project inbox for statement exports.
const statementsDir = "statements"

// processedDir is where exports move after processing.
const processedDir = "statements/processed"

// InInbox reports whether path sits directly in <root>/statements/.
func InInbox(root, path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == filepath.Join(root, statementsDir)
}

// MarkProcessed moves a file from statements/ to statements/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, statementsDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
