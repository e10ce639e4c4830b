// pkg/profile/schema.go
package profile

// SchemaDocument is a decoded JSON Schema fragment. It stays in raw decoded
// form so unknown keys survive the round trip to the compiler; the narrow
// expected shape is enforced by validation, not by struct decoding.
type SchemaDocument map[string]interface{}

// Title returns the document's title, or "" when absent or not a string.
func (d SchemaDocument) Title() string {
	title, _ := d["title"].(string)
	return title
}

// Properties returns the properties map, or nil when absent.
func (d SchemaDocument) Properties() map[string]interface{} {
	props, _ := d["properties"].(map[string]interface{})
	return props
}

// Property wraps a single entry of a schema document's properties map.
type Property map[string]interface{}

func (p Property) Title() string {
	title, _ := p["title"].(string)
	return title
}

func (p Property) ReadOnly() bool {
	ro, _ := p["readOnly"].(bool)
	return ro
}

func (p Property) Type() string {
	typ, _ := p["type"].(string)
	return typ
}

func (p Property) Format() string {
	format, _ := p["format"].(string)
	return format
}
