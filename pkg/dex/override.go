package dex

import (
	"context"
	"fmt"
	"os"

	"pokebattle-core/pkg/integration"

	"github.com/sirupsen/logrus"
)

// LoadSpeciesOverride reads a YAML file in data/species.yaml's shape from
// disk and returns it as a SpeciesDex, for callers that want to add or
// replace species without recompiling (§6: "the concrete on-disk format is
// not part of the core contract" — this loader documents one anyway). The
// read is wrapped in the supplied *integration.ResilientExecutor so a
// transient filesystem error (e.g. the file living on a network mount) is
// retried with backoff before giving up, the same way the teacher wraps
// config.LoadItems. A nil executor falls back to integration.FileSystemExecutor.
// This runs once at startup, never from Tick.
func LoadSpeciesOverride(path string, executor *integration.ResilientExecutor) (SpeciesDex, error) {
	if executor == nil {
		executor = integration.FileSystemExecutor
	}
	log := logrus.WithFields(logrus.Fields{"function": "LoadSpeciesOverride", "path": path})
	log.Debug("loading species override")

	var raw []byte
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		raw = data
		return nil
	})
	if err != nil {
		log.WithError(err).Error("failed to read species override file")
		return nil, fmt.Errorf("dex: read species override %s: %w", path, err)
	}

	dex, err := parseSpeciesDex(raw)
	if err != nil {
		return nil, fmt.Errorf("dex: load species override %s: %w", path, err)
	}
	log.WithField("species_count", len(dex)).Info("species override loaded")
	return dex, nil
}

// LoadMoveOverride is LoadSpeciesOverride's move-dex counterpart. Moves
// loaded this way get programmatic hooks (PowerModifier, AccuracyModifier,
// OnUsageAttempt, a custom multi-hit mapping) only through the same by-id
// wiring in moves.go that the embedded dex uses, so an override file cannot
// attach hooks to a move id that wiring does not know. A nil executor falls
// back to integration.FileSystemExecutor.
func LoadMoveOverride(path string, executor *integration.ResilientExecutor) (MoveDex, error) {
	if executor == nil {
		executor = integration.FileSystemExecutor
	}
	log := logrus.WithFields(logrus.Fields{"function": "LoadMoveOverride", "path": path})
	log.Debug("loading move override")

	var raw []byte
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		raw = data
		return nil
	})
	if err != nil {
		log.WithError(err).Error("failed to read move override file")
		return nil, fmt.Errorf("dex: read move override %s: %w", path, err)
	}

	dex, err := parseMoveDex(raw)
	if err != nil {
		return nil, fmt.Errorf("dex: load move override %s: %w", path, err)
	}
	log.WithField("move_count", len(dex)).Info("move override loaded")
	return dex, nil
}

// MergeSpecies overlays override on top of base, override entries winning on
// id collision. Used by callers that want the embedded fixture set plus a
// handful of additions rather than a full replacement.
func MergeSpecies(base, override SpeciesDex) SpeciesDex {
	merged := make(SpeciesDex, len(base)+len(override))
	for id, s := range base {
		merged[id] = s
	}
	for id, s := range override {
		merged[id] = s
	}
	return merged
}

// MergeMoves is MergeSpecies's move-dex counterpart.
func MergeMoves(base, override MoveDex) MoveDex {
	merged := make(MoveDex, len(base)+len(override))
	for id, m := range base {
		merged[id] = m
	}
	for id, m := range override {
		merged[id] = m
	}
	return merged
}
