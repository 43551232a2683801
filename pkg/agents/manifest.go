package agents

// DefaultModel is assumed for descriptors that do not declare a model.
const DefaultModel = "sonnet"

// Manifest is the normalized record derived from one descriptor file.
// It is never mutated after creation.
type Manifest struct {
	Name        string
	Description string
	Model       string
	Path        string
}

// NewManifest collapses header fields (last occurrence wins) into a Manifest.
// Returns false when the header carries no usable name; such descriptors are
// excluded from the catalog rather than listed with an empty name.
func NewManifest(fields []HeaderField, path string) (Manifest, bool) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Key] = f.Value
	}

	if values["name"] == "" {
		return Manifest{}, false
	}

	m := Manifest{
		Name:        values["name"],
		Description: values["description"],
		Model:       values["model"],
		Path:        path,
	}
	if m.Model == "" {
		m.Model = DefaultModel
	}
	return m, true
}

// BuildCatalog turns scanned descriptors into manifests, preserving scan
// order. Files without a recognizable name contribute nothing; duplicate
// names across files are kept as-is (no de-duplication, no sorting).
func BuildCatalog(descriptors []Descriptor) []Manifest {
	var catalog []Manifest
	for _, d := range descriptors {
		if m, ok := NewManifest(ScanHeader(d.Text), d.Path); ok {
			catalog = append(catalog, m)
		}
	}
	return catalog
}
