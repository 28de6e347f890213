// Package loader parses comment corpus dumps into comment records. The
// format is chosen explicitly by the caller; nothing is inferred from file
// contents or extensions.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

// ErrMissingContent marks a record without usable content. Loaders count
// such records as skipped rather than failing the load.
var ErrMissingContent = errors.New("comment record has no content")

// newComment builds a comment from raw record content, trimming
// whitespace. Blank content is ErrMissingContent.
func newComment(content string) (common.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return common.Comment{}, ErrMissingContent
	}
	return common.Comment{Content: content}, nil
}

// Format identifies a corpus dump format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// CommentLoader parses one corpus format. Records without usable content
// are skipped, not fatal; the second return value counts them.
type CommentLoader interface {
	Load(r io.Reader) (comments []common.Comment, skipped int, err error)
}

// ForFormat returns the loader for a format name.
func ForFormat(format Format) (CommentLoader, error) {
	switch format {
	case FormatJSON:
		return JSONLoader{}, nil
	case FormatText:
		return TextLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", format)
	}
}

// LoadFile opens path and parses it with the given loader.
func LoadFile(path string, l CommentLoader) ([]common.Comment, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	return l.Load(f)
}
