package deps

// Identity names an entity at an optional version.
//
// Identity is a pure value: equality is structural over all fields, so it
// can be compared with == and used as a map key. Versioned distinguishes an
// absent version from an empty version string.
type Identity struct {
	Name      string // Entity name, compared case-sensitively
	Version   string // Declared version; meaningful only when Versioned
	Versioned bool   // Whether a version was declared at all
}

// Named returns a version-less identity.
func Named(name string) Identity {
	return Identity{Name: name}
}

// At returns an identity pinned to version. The version is kept verbatim,
// even when empty.
func At(name, version string) Identity {
	return Identity{Name: name, Version: version, Versioned: true}
}

// HasVersion reports whether the identity carries a version.
func (id Identity) HasVersion() bool { return id.Versioned }

// String renders the identity as "Name" or "Name[Version]".
func (id Identity) String() string {
	if !id.Versioned {
		return id.Name
	}
	return id.Name + "[" + id.Version + "]"
}
