package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed brands/*.yaml
var assetsFS embed.FS

const (
	brandDir = "brands"
	brandExt = ".yaml"
)

// GetBrand returns the raw YAML record of the named brand.
func GetBrand(name string) ([]byte, error) {
	return GetAsset(path.Join(brandDir, name+brandExt))
}

func GetAsset(name string) ([]byte, error) {
	return assetsFS.ReadFile(name)
}

// ListAssets returns every embedded file path.
func ListAssets() ([]string, error) {
	var files []string
	err := fs.WalkDir(assetsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// BrandNames lists embedded brands, sorted.
func BrandNames() ([]string, error) {
	files, err := ListAssets()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range files {
		if path.Dir(f) != brandDir || path.Ext(f) != brandExt {
			continue
		}
		names = append(names, strings.TrimSuffix(path.Base(f), brandExt))
	}
	sort.Strings(names)
	return names, nil
}
