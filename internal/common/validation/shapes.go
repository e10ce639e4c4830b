// Package validation checks decoded JSON values against the narrow shapes
// the pipeline accepts: profile discovery documents and restricted JSON
// Schema documents.
package validation

import (
	"fmt"
	"net/url"
)

// FieldError describes a single shape violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a shape check with per-field detail. The detail
// feeds the structured log only; user-visible failure messages stay generic.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (r *Result) add(field, format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// IsObject reports whether v is a JSON object: non-null and not an array.
func IsObject(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	return ok && m != nil
}

// IsURL reports whether v is a string parseable as an absolute URL. Parse
// failures return false rather than an error.
func IsURL(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// IsProfileDocument reports whether v conforms to the profile document shape.
func IsProfileDocument(v interface{}) bool {
	return CheckProfileDocument(v).Valid
}

// IsSchemaDocument reports whether v conforms to the restricted schema
// document shape.
func IsSchemaDocument(v interface{}) bool {
	return CheckSchemaDocument(v).Valid
}

// CheckProfileDocument validates the profile document shape: an object whose
// _links field is a non-null object, every entry of which carries a string
// href.
func CheckProfileDocument(v interface{}) *Result {
	res := &Result{Valid: true}

	obj, ok := v.(map[string]interface{})
	if !ok || obj == nil {
		res.add("", "document is not an object")
		return res
	}

	links, ok := obj["_links"].(map[string]interface{})
	if !ok || links == nil {
		res.add("_links", "missing or not an object")
		return res
	}

	for rel, raw := range links {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			res.add("_links."+rel, "link is not an object")
			continue
		}
		if _, ok := entry["href"].(string); !ok {
			res.add("_links."+rel+".href", "missing or not a string")
		}
	}

	return res
}

// CheckSchemaDocument validates the restricted schema document shape:
// string title, properties object, a definitions key, type "object", and
// every property entry with string title, boolean readOnly, type "string" or
// "integer", and format (when truthy) "uri" or "date-time".
func CheckSchemaDocument(v interface{}) *Result {
	res := &Result{Valid: true}

	obj, ok := v.(map[string]interface{})
	if !ok || obj == nil {
		res.add("", "document is not an object")
		return res
	}

	if _, ok := obj["title"].(string); !ok {
		res.add("title", "missing or not a string")
	}
	props, ok := obj["properties"].(map[string]interface{})
	if !ok || props == nil {
		res.add("properties", "missing or not an object")
	}
	if _, ok := obj["definitions"]; !ok {
		res.add("definitions", "key is missing")
	}
	if typ, _ := obj["type"].(string); typ != "object" {
		res.add("type", "must be %q", "object")
	}

	for name, raw := range props {
		field := "properties." + name
		entry, ok := raw.(map[string]interface{})
		if !ok {
			res.add(field, "property is not an object")
			continue
		}
		if _, ok := entry["title"].(string); !ok {
			res.add(field+".title", "missing or not a string")
		}
		if _, ok := entry["readOnly"].(bool); !ok {
			res.add(field+".readOnly", "missing or not a boolean")
		}
		if typ, _ := entry["type"].(string); typ != "string" && typ != "integer" {
			res.add(field+".type", "must be %q or %q", "string", "integer")
		}
		// A falsy format (absent, null, empty string) passes; only a truthy
		// value is held to the allowed set. Matches the established behavior
		// of the shipped checker.
		if format, ok := entry["format"]; ok && truthy(format) {
			if format != "uri" && format != "date-time" {
				res.add(field+".format", "must be %q or %q", "uri", "date-time")
			}
		}
	}

	return res
}

// truthy mirrors loose-truthiness over decoded JSON values: null, false, 0
// and "" are falsy; objects and arrays are always truthy.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
