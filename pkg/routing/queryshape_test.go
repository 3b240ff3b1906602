package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShape_AlwaysSelectsIdentifier(t *testing.T) {
	s := BuildShape(nil)
	assert.Equal(t, "{ id }", s.Render())
}

func TestBuildShape_FlatField(t *testing.T) {
	p := mustAnalyze(t, "products/{Product.name}.js")
	s := BuildShape(p.Segments)
	assert.Equal(t, "{ id name }", s.Render())
}

func TestBuildShape_NestedWithUnion(t *testing.T) {
	p := mustAnalyze(t, "blog/{MarkdownRemark.parent__(File)__name}.js")
	s := BuildShape(p.Segments)
	assert.Equal(t, "{ id parent { ... on File { name } } }", s.Render())
}

func TestBuildShape_MergesSharedPrefixes(t *testing.T) {
	a := mustAnalyze(t, "x/{M.frontmatter__title}.js")
	b := mustAnalyze(t, "x/{M.frontmatter__date}.js")

	segments := append(append([]Segment{}, a.Segments...), b.Segments...)
	s := BuildShape(segments)
	assert.Equal(t, "{ frontmatter { date title } id }", s.Render())
}

func TestBuildShape_DeterministicRender(t *testing.T) {
	p := mustAnalyze(t, "x/{M.b__c}/{M.a}.js")
	require.Len(t, p.Segments, 2)

	first := BuildShape(p.Segments).Render()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildShape(p.Segments).Render())
	}
	assert.Equal(t, "{ a b { c } id }", first)
}
