package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// Flags encodes metadata about how a source was obtained.
type Flags uint8

const (
	// Virtual indicates the source was added from memory (test, stdin, generated).
	Virtual Flags = 1 << iota
	// HadBOM indicates a UTF-8 BOM was stripped on load.
	HadBOM
	// NormalizedCRLF indicates \r\n sequences were rewritten to \n on load.
	NormalizedCRLF
)

// Source is a single named, immutable text buffer. The content is never
// mutated after construction; the line index is computed once and reused by
// every position lookup.
type Source struct {
	Name    string
	Content []byte
	Flags   Flags

	lineIdx []uint32 // byte offset of every '\n'
}

// New creates an in-memory source. The name is the key annotations use to
// refer back to this buffer.
func New(name string, content []byte) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Flags:   Virtual,
		lineIdx: buildLineIndex(content),
	}
}

// Load reads a source from disk, stripping a UTF-8 BOM and normalizing CRLF
// line endings so byte offsets are stable across platforms.
func Load(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	var flags Flags
	if hadBOM {
		flags |= HadBOM
	}
	if hadCRLF {
		flags |= NormalizedCRLF
	}
	return &Source{
		Name:    filepath.ToSlash(filepath.Clean(path)),
		Content: content,
		Flags:   flags,
		lineIdx: buildLineIndex(content),
	}, nil
}

// Len returns the content length in bytes.
func (s *Source) Len() uint32 {
	n, err := safecast.Conv[uint32](len(s.Content))
	if err != nil {
		panic(fmt.Errorf("source %q length overflow: %w", s.Name, err))
	}
	return n
}

// LineCount returns the number of lines, counting the tail after the last
// newline as a line even when it is empty.
func (s *Source) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(s.lineIdx) + 1)
	if err != nil {
		panic(fmt.Errorf("source %q line count overflow: %w", s.Name, err))
	}
	return n
}

// Map is an ordered, read-only registry of named sources. Names are unique:
// adding a source under an existing name replaces the lookup entry, so Get
// returns at most one match.
type Map struct {
	sources []*Source
	index   map[string]int
}

// NewMap creates a map holding the given sources in order.
func NewMap(sources ...*Source) *Map {
	m := &Map{
		sources: make([]*Source, 0, len(sources)),
		index:   make(map[string]int, len(sources)),
	}
	for _, src := range sources {
		m.Add(src)
	}
	return m
}

// Add appends a source and points the name index at it.
func (m *Map) Add(src *Source) {
	m.index[src.Name] = len(m.sources)
	m.sources = append(m.sources, src)
}

// Get resolves a source by name. A name no source carries yields
// *FileMissingError.
func (m *Map) Get(name string) (*Source, error) {
	if i, ok := m.index[name]; ok {
		return m.sources[i], nil
	}
	return nil, &FileMissingError{Name: name}
}

// Sources returns the sources in insertion order. The returned slice is the
// map's backing array; callers must not modify it.
func (m *Map) Sources() []*Source {
	return m.sources
}

// Len returns the number of sources.
func (m *Map) Len() int {
	return len(m.sources)
}
