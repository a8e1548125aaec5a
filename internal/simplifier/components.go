package simplifier

import (
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/espalier/pkg/domain"
)

type rawComponent struct {
	Key            string `mapstructure:"key"`
	Name           string `mapstructure:"name"`
	ComponentSetID string `mapstructure:"componentSetId"`
}

type rawComponentSet struct {
	Key         string `mapstructure:"key"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// sanitizeComponents normalizes the raw components mapping. Entries that are
// not objects are skipped with a warning; the mapping key becomes the ID.
func sanitizeComponents(raw map[string]any, logger *slog.Logger) map[string]domain.ComponentDefinition {
	out := make(map[string]domain.ComponentDefinition, len(raw))
	for id, entry := range raw {
		var rc rawComponent
		if err := mapstructure.Decode(entry, &rc); err != nil {
			logger.Warn("skipping malformed component entry", "componentId", id, "err", err)
			continue
		}
		if rc.Name == "" {
			rc.Name = "Unnamed Component"
		}
		out[id] = domain.ComponentDefinition{
			ID:             id,
			Key:            rc.Key,
			Name:           rc.Name,
			ComponentSetID: rc.ComponentSetID,
		}
	}
	return out
}

// sanitizeComponentSets does the same for the componentSets mapping.
func sanitizeComponentSets(raw map[string]any, logger *slog.Logger) map[string]domain.ComponentSetDefinition {
	out := make(map[string]domain.ComponentSetDefinition, len(raw))
	for id, entry := range raw {
		var rs rawComponentSet
		if err := mapstructure.Decode(entry, &rs); err != nil {
			logger.Warn("skipping malformed component set entry", "componentSetId", id, "err", err)
			continue
		}
		if rs.Name == "" {
			rs.Name = "Unnamed Component Set"
		}
		out[id] = domain.ComponentSetDefinition{
			ID:          id,
			Key:         rs.Key,
			Name:        rs.Name,
			Description: rs.Description,
		}
	}
	return out
}
