package fstree

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ScanOptions configures Scan.
type ScanOptions struct {
	// Logger receives warnings about unreadable entries. Nil disables
	// logging.
	Logger *zap.Logger
	// Handlers resolves the default application per MIME type. Nil uses
	// DefaultHandler for everything.
	Handlers *HandlerTable
	// SkipHidden skips dot-files and dot-directories below the root.
	// Sidecar tag files are always skipped.
	SkipHidden bool
}

// Scan walks the directory at root and returns a Tree holding every regular
// file beneath it, in lexicographic order. Entries that cannot be read are
// logged and skipped; only an unusable root is an error.
func Scan(ctx context.Context, root string, opts ScanOptions) (*Tree, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("fstree: scan %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("fstree: scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fstree: scan %s: not a directory", root)
	}

	t := NewTree(filepath.ToSlash(abs), log)
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, werr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if werr != nil {
			if p == abs {
				return werr
			}
			log.Warn("skipping unreadable entry", zap.String("path", p), zap.Error(werr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if p == abs {
			return nil
		}
		name := d.Name()
		hidden := strings.HasPrefix(name, ".")

		if d.IsDir() {
			if opts.SkipHidden && hidden {
				return filepath.SkipDir
			}
			t.EnsureDir(relDir(abs, p))
			return nil
		}
		if !d.Type().IsRegular() || IsSidecar(name) || (opts.SkipHidden && hidden) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("path", p), zap.Error(err))
			return nil
		}
		t.Insert(relDir(abs, filepath.Dir(p)), indexFile(p, fi, opts.Handlers, log))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fstree: scan %s: %w", root, err)
	}
	log.Debug("scan complete", zap.String("root", t.RootPath()), zap.Int("files", t.NumFiles()))
	return t, nil
}

// indexFile builds a File for the regular file at p, resolving its MIME
// type, handler and tags.
func indexFile(p string, fi fs.FileInfo, handlers *HandlerTable, log *zap.Logger) *File {
	f := NewFileFromInfo(fi)
	mt, err := DetectMime(p)
	if err != nil {
		log.Warn("mime detection failed", zap.String("path", p), zap.Error(err))
	}
	f.MimeType = mt
	f.Category = CategoryOf(mt)
	f.Handler = handlers.Lookup(mt)

	tags, err := LoadTags(SidecarPath(p))
	if err != nil {
		log.Warn("tag read failed", zap.String("path", p), zap.Error(err))
	}
	f.tags = tags
	return f
}

// relDir returns dir relative to root with forward slashes; "" for root.
func relDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
