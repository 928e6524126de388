// Package input turns files, archives and standard input into text documents
// ready for parsing.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/CompassSecurity/keyleek/pkg/logging"
	"github.com/acarl005/stripansi"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

var (
	ErrTooLarge = errors.New("input exceeds maximum size")
	ErrBinary   = errors.New("input is a binary file")
)

// Options controls how inputs are read.
type Options struct {
	// MaxSize is the maximum number of bytes read from a single input or archive member
	MaxSize int64
	// MaxDepth limits archive extraction; 0 disables it
	MaxDepth int
	// StripANSI removes terminal escape sequences from text content
	StripANSI bool
}

// Document is one text blob to be parsed.
type Document struct {
	// Name is the input path, "stdin" or the member path inside Archive
	Name    string
	Source  logging.SourceType
	Archive string
	Content string
}

// Load reads path, or standard input when path is "-", and returns its text documents.
// Archives yield one document per contained text file.
func Load(path string, opts Options) ([]Document, error) {
	if path == StdinPath {
		return LoadReader("stdin", logging.SourceTypeStdin, os.Stdin, opts)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input %s is a directory", path)
	}

	// #nosec G304 - User-provided input path, user controls their own filesystem
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadReader(path, logging.SourceTypeFile, f, opts)
}

// LoadReader reads a single named input from r.
func LoadReader(name string, source logging.SourceType, r io.Reader, opts Options) ([]Document, error) {
	content, err := readLimited(r, opts.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if filetype.IsArchive(content) && opts.MaxDepth > 0 {
		log.Debug().Str("input", name).Msg("Detected archive, extracting")
		return extractArchive(name, content, opts, 1)
	}

	kind, _ := filetype.Match(content)
	if kind != filetype.Unknown {
		return nil, fmt.Errorf("%s (%s): %w", name, kind.MIME.Value, ErrBinary)
	}

	return []Document{newDocument(name, source, "", content, opts)}, nil
}

func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}

	content, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed reading input: %w", err)
	}
	if int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%w (%s)", ErrTooLarge, format.HumanSize(maxSize))
	}
	return content, nil
}

func newDocument(name string, source logging.SourceType, archive string, content []byte, opts Options) Document {
	text := string(content)
	if opts.StripANSI {
		text = stripansi.Strip(text)
	}
	return Document{Name: name, Source: source, Archive: archive, Content: text}
}
