package dcv

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps an input file or directory to an ordered list of
// input/output pairs. A single file yields one pair with a flat output
// name under outputDir. A directory is walked recursively in lexical
// order; matching files keep their relative structure under outputDir.
//
// Returns ErrInputNotFound if inputPath does not exist, and
// ErrUnsupportedExtension if a single-file input does not match exts.
// A directory with zero matching files yields an empty slice and nil
// error. Returns ErrOutputCollision if two inputs map to one output.
func Resolve(inputPath string, exts []string, outputDir, outExt string) ([]FileToConvert, error) {
	if outputDir == "" {
		return nil, ErrEmptyOutputDir
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, fmt.Errorf("stat %s: %w", inputPath, err)
	}

	if !info.IsDir() {
		if !matchesExtension(inputPath, exts) {
			return nil, fmt.Errorf("%w: got %q, want one of %s",
				ErrUnsupportedExtension, filepath.Ext(inputPath), strings.Join(exts, ", "))
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: flatOutputPath(inputPath, outputDir, outExt),
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !matchesExtension(path, exts) {
			return nil
		}
		out, err := relativeOutputPath(path, inputPath, outputDir, outExt)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: out})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := checkCollisions(files); err != nil {
		return nil, err
	}
	return files, nil
}

// matchesExtension reports whether path has one of the given extensions,
// compared case-insensitively.
func matchesExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// flatOutputPath places the converted file directly under outputDir.
func flatOutputPath(inputPath, outputDir, outExt string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, base+outExt)
}

// relativeOutputPath preserves the input's position relative to baseDir
// under outputDir, swapping the extension.
func relativeOutputPath(inputPath, baseDir, outputDir, outExt string) (string, error) {
	rel, err := filepath.Rel(baseDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("relativizing %s against %s: %w", inputPath, baseDir, err)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + outExt
	return filepath.Join(outputDir, rel), nil
}

// checkCollisions rejects batches where two inputs map to the same output,
// e.g. "notes.md" and "notes.markdown" in one directory. Converting such a
// batch would silently overwrite one result with the other.
func checkCollisions(files []FileToConvert) error {
	seen := make(map[string]string, len(files))
	for _, f := range files {
		if prev, ok := seen[f.OutputPath]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s",
				ErrOutputCollision, prev, f.InputPath, f.OutputPath)
		}
		seen[f.OutputPath] = f.InputPath
	}
	return nil
}
