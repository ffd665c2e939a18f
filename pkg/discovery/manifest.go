package discovery

import (
	"encoding/xml"
	"os"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/errors"
)

// ParseManifestFile reads a packages.config file and returns one package
// reference per package entry.
func ParseManifestFile(filename string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, ioError(err, filename)
	}
	ds, err := ParseManifest(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", filename)
	}
	return ds, nil
}

// ParseManifest extracts package entries from packages.config XML. The id
// and version attributes are taken verbatim; an entry missing either is an
// error rather than a skipped entry.
func ParseManifest(data []byte) ([]deps.Dependency, error) {
	var ds []deps.Dependency
	err := eachElement(data, func(dec *xml.Decoder, se xml.StartElement) error {
		if se.Name.Local != "package" || se.Name.Space != "" {
			return nil
		}
		id, ok := exactAttr(se, "id")
		if !ok {
			return errors.New(errors.ErrCodeInvalidManifest, "package entry %d missing %q attribute", len(ds)+1, "id")
		}
		version, ok := exactAttr(se, "version")
		if !ok {
			return errors.New(errors.ErrCodeInvalidManifest, "package %q missing %q attribute", id, "version")
		}
		ds = append(ds, deps.PackageDependency(id, version))
		return dec.Skip()
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// exactAttr looks up an unqualified attribute by name.
func exactAttr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
