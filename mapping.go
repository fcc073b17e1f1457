package legend

import (
	"os"
	"sort"

	"github.com/32bitkid/legend/resource"
)

// Asset is a file in the asset directory whose type is known from its
// extension.
type Asset struct {
	Name string
	Type resource.Type
	Size int64
}

// Scan lists the recognised assets in the root directory, sorted by name.
func (root *Root) Scan() ([]Asset, error) {
	entries, err := os.ReadDir(root.Path)
	if err != nil {
		return nil, err
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		t := resource.TypeFor(entry.Name())
		if t == resource.TypeUnknown {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		assets = append(assets, Asset{Name: entry.Name(), Type: t, Size: info.Size()})
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets, nil
}

// Filter returns the assets of type t.
func Filter(assets []Asset, t resource.Type) []Asset {
	var out []Asset
	for _, a := range assets {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}
