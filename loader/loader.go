// Package loader reads entity collections from JSON documents and
// normalizes them for the engine: records without an ID get a generated
// one, and records that cannot be used are skipped with a warning rather
// than failing the whole load.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/watchmen-in/cisadex-engine/entity"
)

// document is the top-level JSON shape. Both a bare array of entities and
// an object with an "entities" key are accepted.
type document struct {
	Entities []entity.Entity `json:"entities"`
}

// Result is the outcome of a load: the usable entities and one warning
// string per skipped or repaired record.
type Result struct {
	Entities []entity.Entity
	Warnings []string
}

// Load decodes entities from r. Records without a name are skipped,
// records without an ID get a generated UUID, and records with an invalid
// enum value load anyway; each repair or skip produces a warning.
func Load(r io.Reader, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = slog.Default()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read input: %w", err)
	}

	var raw []entity.Entity
	if err := json.Unmarshal(data, &raw); err != nil {
		var doc document
		if docErr := json.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("loader: parse entities: %w", err)
		}
		raw = doc.Entities
	}

	res := &Result{Entities: make([]entity.Entity, 0, len(raw))}
	for i, e := range raw {
		if e.Name == "" {
			res.warnf(log, "record %d: skipped, no name (id %q)", i, e.ID)
			continue
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
			res.warnf(log, "record %d: generated id %s for %q", i, e.ID, e.Name)
		}
		if e.Type != "" && !e.Type.IsValid() {
			res.warnf(log, "record %d (%s): unknown office type %q", i, e.ID, e.Type)
		}
		if e.ParentAgency != "" && !e.ParentAgency.IsValid() {
			res.warnf(log, "record %d (%s): unknown agency %q", i, e.ID, e.ParentAgency)
		}
		for _, s := range e.Sectors {
			if !s.IsValid() {
				res.warnf(log, "record %d (%s): unknown sector %q", i, e.ID, s)
			}
		}
		for _, f := range e.Functions {
			if !f.IsValid() {
				res.warnf(log, "record %d (%s): unknown function %q", i, e.ID, f)
			}
		}
		res.Entities = append(res.Entities, e)
	}
	return res, nil
}

// LoadFile loads entities from a JSON file on disk.
func LoadFile(path string, log *slog.Logger) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, log)
}

func (r *Result) warnf(log *slog.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	log.Warn(msg)
}
