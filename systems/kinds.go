package systems

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/constants"
)

// BuildKindTable applies config overrides to the default kind table and validates weights
func BuildKindTable(cfg *config.Config) ([]components.KindInfo, *WeightTable[components.KindInfo], error) {
	kinds := make([]components.KindInfo, len(components.DefaultKinds))
	copy(kinds, components.DefaultKinds)

	for name, override := range cfg.Kinds {
		k, ok := components.ParseKind(name)
		if !ok {
			return nil, nil, errors.Errorf("unknown item kind %q", name)
		}
		if override.Weight != nil {
			kinds[k].Weight = *override.Weight
		}
		if override.Value != nil {
			kinds[k].Value = *override.Value
		}
	}

	table := NewWeightTable(kinds, func(k components.KindInfo) float64 { return k.Weight })
	if err := table.Validate(constants.WeightTolerance); err != nil {
		return nil, nil, errors.Wrap(err, "item kinds")
	}
	return kinds, table, nil
}
