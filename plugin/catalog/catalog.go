// Package catalog models the authored drill content: immutable practice
// sentences with their metadata, loaded once from a JSON manifest.
package catalog

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ItemType tags how a drill item is practiced.
type ItemType string

const (
	TypeTranslation ItemType = "translation"
	TypeRepeat      ItemType = "repeat"
	TypeDialogue    ItemType = "dialogue"
)

// Item is one authored practice sentence. Items are loaded once and never
// mutated; scheduling state lives elsewhere, keyed by ID.
type Item struct {
	ID                 string   `json:"id"`
	TargetText         string   `json:"targetText"`
	TargetTextInformal string   `json:"targetTextInformal,omitempty"`
	GlossText          string   `json:"glossText,omitempty"`
	Unit               int      `json:"unit"`
	Commonality        float64  `json:"commonality"`
	Type               ItemType `json:"type"`
}

// Variants returns the acceptable reference sentences for the item: the
// formal target plus the informal variant when one is authored.
func (i *Item) Variants() []string {
	if i.TargetTextInformal == "" {
		return []string{i.TargetText}
	}
	return []string{i.TargetText, i.TargetTextInformal}
}

// manifest is the on-disk shape of the drill catalog.
type manifest struct {
	Items []*Item `json:"items"`
}

// Load reads and validates a drill manifest from disk.
func Load(path string) ([]*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open drill manifest %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads and validates a drill manifest. The catalog is external input,
// so unlike the engine's pure functions this is the one place that rejects
// malformed content outright.
func Parse(r io.Reader) ([]*Item, error) {
	var m manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode drill manifest")
	}

	seen := make(map[string]bool, len(m.Items))
	for _, item := range m.Items {
		if item.ID == "" {
			return nil, errors.New("drill item with empty id")
		}
		if seen[item.ID] {
			return nil, errors.Errorf("duplicate drill item id %q", item.ID)
		}
		seen[item.ID] = true
		if item.TargetText == "" {
			return nil, errors.Errorf("drill item %q has no target text", item.ID)
		}
		if item.Commonality <= 0 {
			return nil, errors.Errorf("drill item %q has non-positive commonality", item.ID)
		}
		if item.Type == "" {
			item.Type = TypeTranslation
		}
	}
	return m.Items, nil
}
