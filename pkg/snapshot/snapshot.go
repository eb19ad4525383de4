// Package snapshot reads captured page snapshots produced by a renderer and
// exposes them through the segmenter's Container interface. Two formats are
// supported: a JSON render tree and HTML annotated with geometry attributes.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/segmenter"
)

// ErrInvalidSnapshot is wrapped by structural validation failures.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is a fully materialized page capture.
type Snapshot struct {
	URL        string  `json:"url"`
	Title      string  `json:"title,omitempty"`
	PageHeight float64 `json:"page_height"`
	// HTML is the serialized document, when the renderer provides it.
	HTML   string               `json:"html,omitempty"`
	Root   *Node                `json:"root,omitempty"`
	Styles []models.StyleSample `json:"styles,omitempty"`
	Texts  []models.TextEntity  `json:"texts,omitempty"`
	Images []models.ImageEntity `json:"images,omitempty"`

	// container overrides Root for snapshots built from HTML.
	container segmenter.Container
}

// Container returns the root for segmentation, or nil if there is none.
func (s *Snapshot) Container() segmenter.Container {
	if s.container != nil {
		return s.container
	}
	if s.Root == nil {
		return nil
	}
	return s.Root
}

// Validate checks the snapshot has a root and sane page height. A missing
// page height is derived from the root subtree.
func (s *Snapshot) Validate() error {
	if s.Container() == nil {
		return fmt.Errorf("missing root: %w", ErrInvalidSnapshot)
	}
	if s.PageHeight < 0 {
		return fmt.Errorf("negative page height %.0f: %w", s.PageHeight, ErrInvalidSnapshot)
	}
	if s.PageHeight == 0 && s.Root != nil {
		s.PageHeight = s.Root.bottom()
	}
	return nil
}

// Load decodes a JSON snapshot.
func Load(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a snapshot from disk.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes snapshot bytes read from name. Names ending in .html or .htm
// go through the HTML adapter; everything else is parsed as JSON.
func Parse(name string, data []byte) (*Snapshot, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return FromHTML(bytes.NewReader(data), 0)
	default:
		return Load(bytes.NewReader(data))
	}
}
