package translator

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"martianoff/skytranslate/internal/config"
	"martianoff/skytranslate/skyerr"
)

// FileRewriter translates files on disk.
type FileRewriter struct {
	config     *config.Config
	translator *Translator
	logger     *zap.Logger
}

// NewFileRewriter creates a FileRewriter. A nil logger disables logging.
func NewFileRewriter(cfg *config.Config, t *Translator, logger *zap.Logger) *FileRewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRewriter{
		config:     cfg,
		translator: t,
		logger:     logger,
	}
}

// OutputPath returns where the translation of path is written: its base
// name inside the output directory. Inputs that share a base name collide.
func (r *FileRewriter) OutputPath(path string) string {
	return filepath.Join(r.config.OutputDir, filepath.Base(path))
}

// RewriteFile translates path and writes the result to OutputPath(path),
// overwriting any existing file. The output is written with a single call
// and is not staged, so an interrupted write leaves a partial file.
func (r *FileRewriter) RewriteFile(path string) error {
	out := r.OutputPath(path)
	r.logger.Debug("rewriting file", zap.String("input", path), zap.String("output", out))

	src, err := readFile(path)
	if err != nil {
		return skyerr.NewReadError(path, err)
	}

	dst := r.translator.Translate(src)
	if err := writeFile(out, dst); err != nil {
		return skyerr.NewWriteError(out, err)
	}

	r.logger.Debug("rewrote file",
		zap.String("output", out),
		zap.Int("input_bytes", len(src)),
		zap.Int("output_bytes", len(dst)))
	return nil
}

// RewriteAll rewrites each path in order and stops at the first failure.
func (r *FileRewriter) RewriteAll(paths []string) error {
	for _, p := range paths {
		if err := r.RewriteFile(p); err != nil {
			return err
		}
	}
	return nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeFile(path, contents string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, contents)
	return err
}
