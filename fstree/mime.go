package fstree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Category is the coarse MIME category of a file, taken from the top-level
// media type.
type Category uint8

const (
	CategoryBinary Category = iota
	CategoryApplication
	CategoryAudio
	CategoryImage
	CategoryText
	CategoryVideo
	CategoryUnknown
)

var categoryNames = [...]string{
	CategoryBinary:      "binary",
	CategoryApplication: "application",
	CategoryAudio:       "audio",
	CategoryImage:       "image",
	CategoryText:        "text",
	CategoryVideo:       "video",
	CategoryUnknown:     "unknown",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// CategoryOf maps a MIME type such as "image/png; charset=..." to its
// category.
func CategoryOf(mimeType string) Category {
	top, _, _ := strings.Cut(mimeType, "/")
	switch strings.TrimSpace(strings.ToLower(top)) {
	case "binary":
		return CategoryBinary
	case "application":
		return CategoryApplication
	case "audio":
		return CategoryAudio
	case "image":
		return CategoryImage
	case "text":
		return CategoryText
	case "video":
		return CategoryVideo
	default:
		return CategoryUnknown
	}
}

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

// DetectMime returns the MIME type of the file at path without parameters.
// The extension is consulted first; files with an unknown extension are
// sniffed by content.
func DetectMime(path string) (string, error) {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return stripParams(t), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fstree: detect mime %s: %w", path, err)
	}
	defer fh.Close()
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(fh, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("fstree: detect mime %s: %w", path, err)
	}
	return stripParams(http.DetectContentType(buf[:n])), nil
}

func stripParams(t string) string {
	t, _, _ = strings.Cut(t, ";")
	return strings.TrimSpace(t)
}

// DefaultHandler opens files whose MIME type has no registered application.
const DefaultHandler = "xdg-open"

// DefaultsListPath is the freedesktop default-applications list.
const DefaultsListPath = "/usr/share/applications/defaults.list"

// HandlerTable maps MIME types to the application that opens them.
type HandlerTable struct {
	apps map[string]string
}

// NewHandlerTable returns an empty table; every lookup yields
// DefaultHandler.
func NewHandlerTable() *HandlerTable {
	return &HandlerTable{apps: make(map[string]string)}
}

// Set registers app for mimeType.
func (h *HandlerTable) Set(mimeType, app string) {
	h.apps[mimeType] = app
}

// Lookup returns the application for mimeType, or DefaultHandler.
func (h *HandlerTable) Lookup(mimeType string) string {
	if h != nil {
		if app, ok := h.apps[mimeType]; ok {
			return app
		}
	}
	return DefaultHandler
}

// Len returns the number of registered MIME types.
func (h *HandlerTable) Len() int { return len(h.apps) }

// ParseHandlerTable reads "mime/type=app.desktop[;other.desktop]" lines.
// Section headers, comments and malformed lines are skipped. Only the first
// desktop entry is kept, without its ".desktop" suffix.
func ParseHandlerTable(r io.Reader) (*HandlerTable, error) {
	h := NewHandlerTable()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '[' {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		app, _, _ := strings.Cut(val, ";")
		app = strings.TrimSuffix(strings.TrimSpace(app), ".desktop")
		if app == "" {
			continue
		}
		h.apps[strings.TrimSpace(key)] = app
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fstree: parse handler table: %w", err)
	}
	return h, nil
}

// LoadHandlerTable reads the table at path. A missing file yields an empty
// table and no error.
func LoadHandlerTable(path string) (*HandlerTable, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewHandlerTable(), nil
		}
		return nil, fmt.Errorf("fstree: open handler table: %w", err)
	}
	defer fh.Close()
	return ParseHandlerTable(fh)
}
