package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowLinks_ExcludesSelf(t *testing.T) {
	doc := &Document{Links: map[string]Link{
		"self":     {Href: "http://x/profile"},
		"accounts": {Href: "http://x/accounts"},
		"users":    {Href: "http://x/users"},
	}}

	follow := doc.FollowLinks()
	assert.Len(t, follow, 2)
	assert.NotContains(t, follow, "self")
	assert.Equal(t, "http://x/accounts", follow["accounts"].Href)
}

func TestFromDecoded(t *testing.T) {
	raw := []byte(`{"_links":{"self":{"href":"http://x/profile"},"a":{"href":"http://x/a"}}}`)
	var v interface{}
	require.NoError(t, json.Unmarshal(raw, &v))

	doc := FromDecoded(v)
	require.Len(t, doc.Links, 2)
	assert.Equal(t, "http://x/a", doc.Links["a"].Href)
}

func TestFromDecoded_ToleratesGarbage(t *testing.T) {
	assert.Empty(t, FromDecoded(nil).Links)
	assert.Empty(t, FromDecoded("x").Links)
	assert.Empty(t, FromDecoded(map[string]interface{}{"_links": nil}).Links)
}

func TestSchemaDocumentAccessors(t *testing.T) {
	doc := SchemaDocument{
		"title": "Account",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"title":    "ID",
				"readOnly": true,
				"type":     "integer",
			},
		},
	}

	assert.Equal(t, "Account", doc.Title())
	require.Contains(t, doc.Properties(), "id")

	prop := Property(doc.Properties()["id"].(map[string]interface{}))
	assert.Equal(t, "ID", prop.Title())
	assert.True(t, prop.ReadOnly())
	assert.Equal(t, "integer", prop.Type())
	assert.Equal(t, "", prop.Format())
}

func TestSchemaDocumentAccessors_Absent(t *testing.T) {
	doc := SchemaDocument{}
	assert.Equal(t, "", doc.Title())
	assert.Nil(t, doc.Properties())
}
