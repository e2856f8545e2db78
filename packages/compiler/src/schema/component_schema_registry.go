package schema

// ComponentSchemaRegistry is the schema lookup capability of the
// compiler front end: given a component type path it answers whether
// the type satisfies the component contract, exposes its associated
// properties type and field names, and spells the builder, default
// construction and per-field value conversion expressions used at
// emission time
type ComponentSchemaRegistry interface {
	// HasComponent checks if a type path names a component
	HasComponent(typePath string) bool

	// PropertiesType returns the associated properties type
	PropertiesType(typePath string) (string, bool)

	// PropertyNames returns the field names of the properties schema
	PropertyNames(typePath string) []string

	// HasProperty checks if a property exists on the component schema
	HasProperty(typePath string, propName string) bool

	// FieldType returns the declared type of a property field
	FieldType(typePath string, propName string) (string, bool)

	// BuilderExpr returns the builder expression for the properties type
	BuilderExpr(typePath string) string

	// DefaultExpr returns the default-construction expression used when
	// no properties are supplied
	DefaultExpr(typePath string) string

	// FieldConversion spells the conversion of a supplied value
	// expression into the field's declared type, bound to the given
	// scope expression
	FieldConversion(typePath, propName, scopeExpr, valueExpr string) string

	// AllKnownComponentNames returns all registered component paths
	AllKnownComponentNames() []string
}
