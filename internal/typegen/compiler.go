// internal/typegen/compiler.go
package typegen

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/xeipuuv/gojsonschema"

	"schema-typegen/pkg/profile"
)

// Compiler turns a validated schema document into type-definition text. The
// default implementation emits Go struct declarations; anything honoring the
// contract can stand in for it.
type Compiler interface {
	Compile(ctx context.Context, doc profile.SchemaDocument, name string) (string, error)
}

// Options control the generated output.
type Options struct {
	// DefaultName names the generated type when the document title is unusable.
	DefaultName string
	// DisallowAdditionalProperties forces additionalProperties to false on the
	// document before compilation.
	DisallowAdditionalProperties bool
}

// GoCompiler generates Go struct declarations from schema documents.
type GoCompiler struct {
	opts Options
	tmpl *template.Template
}

const typeTemplate = `// {{ .Name }} is generated from the "{{ .Title }}" schema document.
{{- if .DisallowAdditional }}
// Additional properties are not allowed.
{{- end }}
type {{ .Name }} struct {
{{ .Fields }}
}
`

type typeData struct {
	Name               string
	Title              string
	DisallowAdditional bool
	Fields             string
}

func NewGoCompiler(opts Options) *GoCompiler {
	if opts.DefaultName == "" {
		opts.DefaultName = "Schema"
	}
	return &GoCompiler{
		opts: opts,
		tmpl: template.Must(template.New("type").Parse(typeTemplate)),
	}
}

// Compile renders one schema document. An empty name falls back to the
// document title, then to the configured default. The document must compile
// as a loadable JSON Schema before any text is generated.
func (c *GoCompiler) Compile(_ context.Context, doc profile.SchemaDocument, name string) (string, error) {
	if c.opts.DisallowAdditionalProperties {
		doc = withoutAdditionalProperties(doc)
	}

	if _, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]interface{}(doc))); err != nil {
		return "", fmt.Errorf("schema does not compile: %w", err)
	}

	if name == "" {
		name = doc.Title()
	}
	typeName := TypeName(name)
	if typeName == "" {
		typeName = c.opts.DefaultName
	}

	data := typeData{
		Name:               typeName,
		Title:              doc.Title(),
		DisallowAdditional: c.opts.DisallowAdditionalProperties,
		Fields:             generateStructFields(doc.Properties()),
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render type %s: %w", typeName, err)
	}
	return buf.String(), nil
}

// withoutAdditionalProperties returns a shallow copy of the document with
// additionalProperties pinned to false. The input is left untouched.
func withoutAdditionalProperties(doc profile.SchemaDocument) profile.SchemaDocument {
	out := make(profile.SchemaDocument, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	out["additionalProperties"] = false
	return out
}

// generateStructFields renders struct field definitions from schema
// properties, in sorted key order so output is deterministic.
func generateStructFields(properties map[string]interface{}) string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []string
	for _, name := range names {
		entry, ok := properties[name].(map[string]interface{})
		if !ok {
			continue
		}
		prop := profile.Property(entry)

		comment := fieldComment(prop)
		fieldDef := fmt.Sprintf("\t%s %s `json:\"%s\"`%s",
			TypeName(name), goTypeFromSchemaType(prop.Type()), name, comment)
		fields = append(fields, fieldDef)
	}
	return strings.Join(fields, "\n")
}

func fieldComment(prop profile.Property) string {
	var notes []string
	if title := prop.Title(); title != "" {
		notes = append(notes, title)
	}
	if format := prop.Format(); format != "" {
		notes = append(notes, "format: "+format)
	}
	if prop.ReadOnly() {
		notes = append(notes, "read-only")
	}
	if len(notes) == 0 {
		return ""
	}
	return " // " + strings.Join(notes, ", ")
}

// goTypeFromSchemaType maps the restricted schema types to Go types.
func goTypeFromSchemaType(schemaType string) string {
	switch schemaType {
	case "string":
		return "string"
	case "integer":
		return "int64"
	default:
		return "interface{}"
	}
}

// TypeName derives an exported Go identifier from a schema title or property
// name: non-alphanumeric runs split words, every word is capitalized.
func TypeName(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			if upperNext {
				r = r - 'a' + 'A'
			}
			b.WriteRune(r)
			upperNext = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			upperNext = false
		case r >= '0' && r <= '9':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
			upperNext = true
		default:
			upperNext = true
		}
	}
	return b.String()
}
