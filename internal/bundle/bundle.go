// Package bundle defines the on-disk interchange format the CLI consumes:
// a set of named sources plus the reports produced against them, encoded as
// JSON (.json) or msgpack (.lrb). Front ends write bundles; lantern renders
// them without linking the producer.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"lantern/internal/report"
	"lantern/internal/source"
)

// Schema version - increment when the Bundle format changes.
const SchemaVersion uint16 = 1

// Extension of msgpack-encoded bundles.
const MsgpackExt = ".lrb"

// Source is a named text buffer carried inside a bundle.
type Source struct {
	Name    string `json:"name" msgpack:"name"`
	Content string `json:"content" msgpack:"content"`
}

// Bundle groups the sources and reports of one producer run.
type Bundle struct {
	Schema  uint16          `json:"schema" msgpack:"schema"`
	Sources []Source        `json:"sources" msgpack:"sources"`
	Reports []report.Report `json:"reports" msgpack:"reports"`
}

// New creates an empty bundle with the current schema version.
func New() *Bundle {
	return &Bundle{Schema: SchemaVersion}
}

// WithSource appends a source.
func (b *Bundle) WithSource(name, content string) *Bundle {
	b.Sources = append(b.Sources, Source{Name: name, Content: content})
	return b
}

// WithReport appends a report.
func (b *Bundle) WithReport(r *report.Report) *Bundle {
	b.Reports = append(b.Reports, *r)
	return b
}

// Map materializes the bundle's sources as a source.Map for rendering.
func (b *Bundle) Map() *source.Map {
	m := source.NewMap()
	for _, s := range b.Sources {
		m.Add(source.New(s.Name, []byte(s.Content)))
	}
	return m
}

// Collection returns the bundle's reports in order.
func (b *Bundle) Collection() report.Collection {
	c := make(report.Collection, 0, len(b.Reports))
	for i := range b.Reports {
		c = append(c, &b.Reports[i])
	}
	return c
}

// Decode reads a bundle from disk, dispatching on the file extension:
// MsgpackExt selects msgpack, everything else is treated as JSON.
func Decode(path string) (*Bundle, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var b Bundle
	if isMsgpack(path) {
		err = msgpack.NewDecoder(f).Decode(&b)
	} else {
		err = json.NewDecoder(f).Decode(&b)
	}
	if err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", path, err)
	}
	if b.Schema != SchemaVersion {
		return nil, fmt.Errorf("bundle %s: schema %d not supported (want %d)", path, b.Schema, SchemaVersion)
	}
	return &b, nil
}

// Encode writes a bundle to disk, dispatching on the file extension the
// same way Decode does.
func (b *Bundle) Encode(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if isMsgpack(path) {
		err = msgpack.NewEncoder(f).Encode(b)
	} else {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		err = enc.Encode(b)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode bundle %s: %w", path, err)
	}
	return f.Close()
}

func isMsgpack(path string) bool {
	return strings.EqualFold(filepath.Ext(path), MsgpackExt)
}
