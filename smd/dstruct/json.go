package dstruct

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"

	"smd-steady/smd/dframe"
)

// ToLinkedHashMap lays the file out as ordered JSON: version, nodes, then one
// object per frame keyed by bone name.
func ToLinkedHashMap(file Struct) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("version", file.Header.Version)
	if file.Skeleton != nil {
		lhm.Set("nodes", file.Skeleton.Nodes())
	}
	frames := lo.Map(
		file.Animation,
		func(frame *dframe.Frame, index int) *orderedmap.OrderedMap {
			frameLhm := orderedmap.New()
			frameLhm.Set("time", index)
			frameLhm.Set("bones", frame)
			return frameLhm
		},
	)
	lhm.Set("frames", frames)
	return lhm
}

func ToJSON(file Struct) ([]byte, error) {
	return json.MarshalIndent(ToLinkedHashMap(file), "", "  ")
}
