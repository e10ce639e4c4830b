// pkg/profile/profile.go
package profile

// SelfRelation is the link relation a profile document uses for its own
// location. It is never followed.
const SelfRelation = "self"

// Link is a single hyperlink entry in a profile document.
type Link struct {
	Href string `json:"href"`
}

// Document is a profile discovery document: a map of relation names to links.
type Document struct {
	Links map[string]Link `json:"_links"`
}

// FollowLinks returns the links to traverse, excluding the self relation.
func (d *Document) FollowLinks() map[string]Link {
	out := make(map[string]Link, len(d.Links))
	for rel, link := range d.Links {
		if rel == SelfRelation {
			continue
		}
		out[rel] = link
	}
	return out
}

// FromDecoded builds a Document from an already-decoded JSON value that has
// passed profile-document validation. Entries whose href is not a string are
// skipped; validation guarantees there are none.
func FromDecoded(v interface{}) *Document {
	doc := &Document{Links: map[string]Link{}}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return doc
	}
	links, ok := obj["_links"].(map[string]interface{})
	if !ok {
		return doc
	}
	for rel, raw := range links {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		href, ok := entry["href"].(string)
		if !ok {
			continue
		}
		doc.Links[rel] = Link{Href: href}
	}
	return doc
}
