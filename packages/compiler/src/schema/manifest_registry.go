package schema

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PropertyField describes one field of a component's properties schema
type PropertyField struct {
	// Name is the property label as written in markup
	Name string `yaml:"name"`
	// Type is the Go type the field expects
	Type string `yaml:"type"`
	// Required marks fields the builder demands before Build
	Required bool `yaml:"required"`
}

// ComponentSchema describes one component type: its markup path, its
// properties type and the fields that type declares. Schemas are
// produced by the external schema-derivation system and consumed here
// read-only
type ComponentSchema struct {
	// Name is the component type path as written in markup, e.g.
	// `app::Counter`
	Name string `yaml:"name"`
	// PropertiesType is the Go type of the associated properties value
	PropertiesType string `yaml:"properties_type"`
	// Builder overrides the derived builder expression when set
	Builder string `yaml:"builder"`
	// Properties lists the schema fields
	Properties []PropertyField `yaml:"properties"`
}

// Manifest is the on-disk schema document
type Manifest struct {
	Components []*ComponentSchema `yaml:"components"`
}

// ManifestRegistry is a ComponentSchemaRegistry backed by YAML schema
// manifests
type ManifestRegistry struct {
	components   map[string]*ComponentSchema
	runtimeAlias string
}

// NewManifestRegistry creates an empty ManifestRegistry. Emitted
// conversions reference the runtime package through runtimeAlias;
// pass "" for the default alias
func NewManifestRegistry(runtimeAlias string) *ManifestRegistry {
	if runtimeAlias == "" {
		runtimeAlias = "vtree"
	}
	return &ManifestRegistry{
		components:   map[string]*ComponentSchema{},
		runtimeAlias: runtimeAlias,
	}
}

// Register adds a component schema to the registry
func (r *ManifestRegistry) Register(schema *ComponentSchema) error {
	if schema.Name == "" {
		return fmt.Errorf("component schema is missing a name")
	}
	if schema.PropertiesType == "" {
		return fmt.Errorf("component schema %q is missing properties_type", schema.Name)
	}
	if _, exists := r.components[schema.Name]; exists {
		return fmt.Errorf("component schema %q registered twice", schema.Name)
	}
	r.components[schema.Name] = schema
	return nil
}

// LoadManifest reads and registers a YAML schema manifest
func (r *ManifestRegistry) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading schema manifest %s: %w", path, err)
	}
	return r.LoadManifestBytes(data, path)
}

// LoadManifestBytes registers the components of an in-memory manifest
func (r *ManifestRegistry) LoadManifestBytes(data []byte, source string) error {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing schema manifest %s: %w", source, err)
	}
	for _, schema := range manifest.Components {
		if err := r.Register(schema); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
	}
	return nil
}

// HasComponent checks if a type path names a component
func (r *ManifestRegistry) HasComponent(typePath string) bool {
	_, ok := r.components[typePath]
	return ok
}

// PropertiesType returns the associated properties type
func (r *ManifestRegistry) PropertiesType(typePath string) (string, bool) {
	schema, ok := r.components[typePath]
	if !ok {
		return "", false
	}
	return schema.PropertiesType, true
}

// PropertyNames returns the field names of the properties schema
func (r *ManifestRegistry) PropertyNames(typePath string) []string {
	schema, ok := r.components[typePath]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(schema.Properties))
	for _, field := range schema.Properties {
		names = append(names, field.Name)
	}
	sort.Strings(names)
	return names
}

// HasProperty checks if a property exists on the component schema
func (r *ManifestRegistry) HasProperty(typePath string, propName string) bool {
	_, ok := r.FieldType(typePath, propName)
	return ok
}

// FieldType returns the declared type of a property field
func (r *ManifestRegistry) FieldType(typePath string, propName string) (string, bool) {
	schema, ok := r.components[typePath]
	if !ok {
		return "", false
	}
	for _, field := range schema.Properties {
		if field.Name == propName {
			return field.Type, true
		}
	}
	return "", false
}

// BuilderExpr returns the builder expression for the properties type.
// When the manifest carries no explicit builder it is derived from the
// properties type: `app.CounterProps` becomes
// `app.NewCounterPropsBuilder()`
func (r *ManifestRegistry) BuilderExpr(typePath string) string {
	schema, ok := r.components[typePath]
	if !ok {
		return ""
	}
	if schema.Builder != "" {
		return schema.Builder
	}
	pkg := ""
	name := schema.PropertiesType
	if i := strings.LastIndex(name, "."); i >= 0 {
		pkg = name[:i+1]
		name = name[i+1:]
	}
	return fmt.Sprintf("%sNew%sBuilder()", pkg, name)
}

// DefaultExpr returns the default-construction expression used when no
// properties are supplied
func (r *ManifestRegistry) DefaultExpr(typePath string) string {
	builder := r.BuilderExpr(typePath)
	if builder == "" {
		return ""
	}
	return builder + ".Build()"
}

// FieldConversion spells the conversion of a supplied value expression
// into the field's declared type. Unknown fields pass the value
// through untouched; the validator has already reported them
func (r *ManifestRegistry) FieldConversion(typePath, propName, scopeExpr, valueExpr string) string {
	fieldType, ok := r.FieldType(typePath, propName)
	if !ok || fieldType == "" {
		return valueExpr
	}
	return fmt.Sprintf("%s.TransformTo[%s](%s, %s)", r.runtimeAlias, fieldType, scopeExpr, valueExpr)
}

// AllKnownComponentNames returns all registered component paths
func (r *ManifestRegistry) AllKnownComponentNames() []string {
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
