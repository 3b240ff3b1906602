package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLICommandQuery_UnionShape(t *testing.T) {
	cmd := NewRootCmd()
	out := bytes.NewBufferString("")
	cmd.SetOut(out)
	cmd.SetArgs([]string{"query", "--template", "blog/{MarkdownRemark.parent__(File)__name}.js"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "stripped: blog/{MarkdownRemark.parent__(File)__name}") {
		t.Errorf("missing stripped template: %q", got)
	}
	if !strings.Contains(got, "{MarkdownRemark.parent__(File)__name} -> parent.name (narrowed to File)") {
		t.Errorf("missing segment listing: %q", got)
	}
	if !strings.Contains(got, "shape: { id parent { ... on File { name } } }") {
		t.Errorf("missing shape: %q", got)
	}
}

func TestCLICommandQuery_StaticPage(t *testing.T) {
	cmd := NewRootCmd()
	out := bytes.NewBufferString("")
	cmd.SetOut(out)
	cmd.SetArgs([]string{"query", "--template", "about.js"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out.String(), "static page") {
		t.Errorf("expected static page notice, got %q", out.String())
	}
}
