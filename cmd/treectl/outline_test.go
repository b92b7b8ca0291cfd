package main

import (
	"strings"
	"testing"
)

const sampleOutline = `root=root_value
	child1=child1_value #group
		child1.1=child1.1_value
	child2=child2_value #group,critical
		child2.1=child2.1_value
`

func TestParseOutline_BuildsTree(t *testing.T) {
	tr, err := parseOutline(strings.NewReader(sampleOutline))
	if err != nil {
		t.Fatalf("parseOutline failed: %v", err)
	}

	if tr.Len() != 5 {
		t.Errorf("Expected 5 nodes, got %d", tr.Len())
	}

	n, ok := tr.Find("child1.1")
	if !ok {
		t.Fatal("child1.1 not found")
	}
	if n.Value() != "child1.1_value" {
		t.Errorf("child1.1 value = %q; want child1.1_value", n.Value())
	}
	if n.Parent().Key() != "child1" {
		t.Errorf("child1.1 parent = %q; want child1", n.Parent().Key())
	}
}

func TestParseOutline_Tags(t *testing.T) {
	tr, err := parseOutline(strings.NewReader(sampleOutline))
	if err != nil {
		t.Fatalf("parseOutline failed: %v", err)
	}

	nodes, ok := tr.FindBySecondaryIndex("group")
	if !ok || len(nodes) != 2 {
		t.Fatalf("group tag = %d nodes, %v; want 2, true", len(nodes), ok)
	}
	if nodes[0].Key() != "child1" || nodes[1].Key() != "child2" {
		t.Errorf("group order = [%s %s]; want [child1 child2]", nodes[0].Key(), nodes[1].Key())
	}

	critical, ok := tr.FindBySecondaryIndex("critical")
	if !ok || len(critical) != 1 || critical[0].Key() != "child2" {
		t.Errorf("critical tag lookup failed: %v, %v", critical, ok)
	}
}

func TestParseOutline_SpaceIndent(t *testing.T) {
	outline := "root\n  a\n    b\n  c\n"
	tr, err := parseOutline(strings.NewReader(outline))
	if err != nil {
		t.Fatalf("parseOutline failed: %v", err)
	}

	b, ok := tr.Find("b")
	if !ok || b.Parent().Key() != "a" {
		t.Error("two-space indentation should nest b under a")
	}
	c, ok := tr.Find("c")
	if !ok || c.Parent().Key() != "root" {
		t.Error("c should attach to root")
	}
}

func TestParseOutline_CommentsAndBlanks(t *testing.T) {
	outline := "// header comment\n\nroot\n\n\ta\n"
	tr, err := parseOutline(strings.NewReader(outline))
	if err != nil {
		t.Fatalf("parseOutline failed: %v", err)
	}
	if tr.Len() != 2 {
		t.Errorf("Expected 2 nodes, got %d", tr.Len())
	}
}

func TestParseOutline_Errors(t *testing.T) {
	cases := []struct {
		name    string
		outline string
	}{
		{"empty", ""},
		{"indented root", "\troot\n"},
		{"second root", "root\nother\n"},
		{"skipped level", "root\n\t\tdeep\n"},
		{"duplicate key", "root\n\ta\n\ta\n"},
		{"missing key", "root\n\t=value\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseOutline(strings.NewReader(tc.outline)); err == nil {
				t.Errorf("Expected error for %s outline", tc.name)
			}
		})
	}
}
