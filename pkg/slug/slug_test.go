package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake_Basic(t *testing.T) {
	o := Defaults()

	assert.Equal(t, "veggie-burger", Make("Veggie Burger", o))
	assert.Equal(t, "hello-world", Make("  Hello   World  ", o))
	assert.Equal(t, "my-app-20", Make("My App 2.0!", o))
	assert.Equal(t, "", Make("", o))
	assert.Equal(t, "", Make("!!!", o))
}

func TestMake_Diacritics(t *testing.T) {
	o := Defaults()
	assert.Equal(t, "creme-brulee", Make("Crème Brûlée", o))
	assert.Equal(t, "uber-straße", Make("Über Straße", o)) // ß has no combining mark to strip
}

func TestMake_DiacriticsKept(t *testing.T) {
	o := Defaults()
	o.StripDiacritics = false
	assert.Equal(t, "crème-brûlée", Make("Crème Brûlée", o))
}

func TestMake_CaseAndSeparatorOptions(t *testing.T) {
	o := Options{Lowercase: false, Separator: '_', StripDiacritics: true}
	assert.Equal(t, "Hello_World", Make("Hello World", o))
}

func TestMake_CollapsesSeparatorRuns(t *testing.T) {
	o := Defaults()
	assert.Equal(t, "a-b", Make("a - b", o))
	assert.Equal(t, "a-b", Make("a--b", o))
	assert.Equal(t, "a", Make("-a-", o))
}

func TestMakePath_PreservesHierarchy(t *testing.T) {
	o := Defaults()

	assert.Equal(t, "a/b", MakePath("a/b", o))
	assert.Equal(t, "guides/getting-started", MakePath("Guides/Getting Started", o))
	// Empty pieces stay in place; the resolver's collapse pass removes them.
	assert.Equal(t, "/a/", MakePath("/A!/", o))
}

func TestMakePath_NaiveWholeStringWouldDiffer(t *testing.T) {
	// The slash must survive, which Make alone would not guarantee.
	o := Defaults()
	assert.Equal(t, "ab", Make("a/b", o))
	assert.Equal(t, "a/b", MakePath("a/b", o))
}
