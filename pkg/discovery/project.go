package discovery

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/errors"
)

var (
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// ParseProjectFile reads an MSBuild project file and returns its declared
// dependencies: project references first, then package references.
func ParseProjectFile(filename string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, ioError(err, filename)
	}
	ds, err := ParseProject(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "parse %s", filename)
	}
	return ds, nil
}

// ParseProject extracts dependencies from MSBuild project XML.
func ParseProject(data []byte) ([]deps.Dependency, error) {
	var projectRefs, packageRefs []deps.Dependency

	err := eachElement(data, func(dec *xml.Decoder, se xml.StartElement) error {
		switch se.Name.Local {
		case "ProjectReference":
			d, err := projectReference(dec, se)
			if err != nil {
				return err
			}
			projectRefs = append(projectRefs, d)
		case "Reference":
			include, ok := attr(se, "Include")
			if !ok {
				return errors.New(errors.ErrCodeInvalidProject, "Reference element without Include attribute")
			}
			packageRefs = append(packageRefs, assemblyReference(include))
			return dec.Skip()
		case "PackageReference":
			d, err := packageReference(dec, se)
			if err != nil {
				return err
			}
			packageRefs = append(packageRefs, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return append(projectRefs, packageRefs...), nil
}

type projectReferenceElement struct {
	Name *string `xml:"Name"`
}

func projectReference(dec *xml.Decoder, se xml.StartElement) (deps.Dependency, error) {
	var el projectReferenceElement
	if err := dec.DecodeElement(&el, &se); err != nil {
		return deps.Dependency{}, err
	}
	if el.Name != nil {
		return deps.ProjectDependency(strings.TrimSpace(*el.Name)), nil
	}
	include, ok := attr(se, "Include")
	if !ok || strings.TrimSpace(include) == "" {
		return deps.Dependency{}, errors.New(errors.ErrCodeInvalidProject, "ProjectReference element without Name or Include")
	}
	return deps.ProjectDependency(projectNameFromPath(include)), nil
}

// projectNameFromPath turns `..\Core\Core.csproj` into "Core". MSBuild
// paths use backslashes regardless of platform.
func projectNameFromPath(p string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(p), `\`, "/"))
	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// assemblyReference parses an assembly-qualified Include value such as
// "Newtonsoft.Json, Version=12.0.0.0, Culture=neutral". The first token is
// the name; the first token mentioning Version supplies the version after
// its last '='.
func assemblyReference(include string) deps.Dependency {
	parts := strings.Split(include, ",")
	name := strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		if strings.Contains(p, "Version") {
			v := p[strings.LastIndex(p, "=")+1:]
			return deps.PackageDependency(name, strings.TrimSpace(v))
		}
	}
	return deps.UnversionedPackage(name)
}

type packageReferenceElement struct {
	Version *string `xml:"Version"`
}

func packageReference(dec *xml.Decoder, se xml.StartElement) (deps.Dependency, error) {
	name, ok := attr(se, "Include")
	if !ok {
		name, ok = attr(se, "Update")
	}
	if !ok {
		return deps.Dependency{}, errors.New(errors.ErrCodeInvalidProject, "PackageReference element without Include or Update attribute")
	}

	var el packageReferenceElement
	if err := dec.DecodeElement(&el, &se); err != nil {
		return deps.Dependency{}, err
	}

	if v, ok := attr(se, "Version"); ok {
		return deps.PackageDependency(name, v), nil
	}
	if el.Version != nil {
		return deps.PackageDependency(name, strings.TrimSpace(*el.Version)), nil
	}
	return deps.UnversionedPackage(name), nil
}

// newDecoder returns a decoder for data that honours the encoding named in
// the XML declaration. A leading byte order mark wins over the declaration:
// UTF-16 input is transcoded to UTF-8 up front.
func newDecoder(data []byte) *xml.Decoder {
	utf16 := bytes.HasPrefix(data, utf16LEBOM) || bytes.HasPrefix(data, utf16BEBOM)
	dec := xml.NewDecoder(transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop)))
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		if utf16 && strings.HasPrefix(strings.ToLower(label), "utf-16") {
			return input, nil
		}
		return charset.NewReaderLabel(label, input)
	}
	return dec
}

// eachElement calls fn for every start element in document order. fn may
// consume the element's content through dec; elements it leaves alone are
// descended into normally.
func eachElement(data []byte, fn func(*xml.Decoder, xml.StartElement) error) error {
	dec := newDecoder(data)
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if err := fn(dec, se); err != nil {
			return err
		}
	}
	if !sawRoot {
		return errors.New(errors.ErrCodeInvalidFormat, "no root element")
	}
	return nil
}

// attr looks up an attribute by local name.
func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
