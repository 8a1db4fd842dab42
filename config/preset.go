package config

import (
	"sort"

	"github.com/samber/lo"

	"smd-steady/ds"
	"smd-steady/stabilize"
)

const (
	PresetNone             = "none"
	PresetValveBiped       = "valve-biped"
	PresetValveBipedLegacy = "valve-biped-legacy"
)

// Preset bundles the bone lists and channels that a family of rigs needs.
type Preset struct {
	Ignore    []string
	BaseBones []string
	Channels  []int
}

var presets = map[string]Preset{
	PresetNone: {},
	PresetValveBiped: {
		Ignore:    []string{"ValveBiped.weapon_bone"},
		BaseBones: []string{"pelvis", "lean_root", "cam_driver"},
		Channels:  stabilize.TranslationChannels,
	},
	PresetValveBipedLegacy: {
		Ignore:    []string{"ValveBiped.weapon_bone"},
		BaseBones: []string{"pelvis", "lean_root", "cam_driver"},
		Channels:  stabilize.LegacyChannels,
	},
}

func LookupPreset(name string) (Preset, bool) {
	preset, ok := presets[name]
	if !ok {
		return Preset{}, false
	}
	return Preset{
		Ignore:    ds.ShallowCopy(preset.Ignore),
		BaseBones: ds.ShallowCopy(preset.BaseBones),
		Channels:  ds.ShallowCopy(preset.Channels),
	}, true
}

func PresetNames() []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}
