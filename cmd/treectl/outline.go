package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/treekit/tree"
)

// parseOutlineFile reads an outline file and builds the tree it describes.
func parseOutlineFile(path string) (*tree.Tree[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open outline: %w", err)
	}
	defer f.Close()

	logger.Debug("parsing outline", "path", path)
	return parseOutline(f)
}

// parseOutline builds a tree from an indented outline. Each non-empty,
// non-comment line declares one node:
//
//	key[=value] [#tag1,tag2]
//
// Depth is the number of leading tabs, or two spaces per level. The first
// line must be the root (depth 0); every other line attaches to the nearest
// shallower line above it.
func parseOutline(r io.Reader) (*tree.Tree[string, string], error) {
	var (
		t *tree.Tree[string, string]
		// parents[d] is the key of the most recent node seen at depth d.
		parents []string
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}

		depth, rest := measureDepth(line)
		key, value, tags, err := parseEntry(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch {
		case t == nil:
			if depth != 0 {
				return nil, fmt.Errorf("line %d: first node must be at depth 0", lineNo)
			}
			t = tree.New(key, value)
			parents = []string{key}

		case depth == 0:
			return nil, fmt.Errorf("line %d: outline has a second root %q", lineNo, key)

		case depth > len(parents):
			return nil, fmt.Errorf("line %d: node %q skips an indent level", lineNo, key)

		default:
			parentKey := parents[depth-1]
			if err := t.Insert(parentKey, key, value); err != nil {
				return nil, fmt.Errorf("line %d: insert %q under %q: %w", lineNo, key, parentKey, err)
			}
			parents = append(parents[:depth], key)
		}

		for _, tag := range tags {
			t.AddToSecondaryIndex(tag, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outline: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("outline is empty")
	}

	logger.Debug("outline parsed", "nodes", t.Len(), "tags", len(t.Tags()))
	return t, nil
}

// measureDepth counts leading tabs (or two-space groups) and returns the
// depth plus the trimmed remainder of the line.
func measureDepth(line string) (int, string) {
	depth := 0
	for {
		switch {
		case strings.HasPrefix(line, "\t"):
			line = line[1:]
		case strings.HasPrefix(line, "  "):
			line = line[2:]
		default:
			return depth, line
		}
		depth++
	}
}

// parseEntry splits "key[=value] [#tag1,tag2]" into its parts.
func parseEntry(s string) (key, value string, tags []string, err error) {
	s = strings.TrimSpace(s)

	if hash := strings.Index(s, "#"); hash >= 0 {
		for _, tag := range strings.Split(s[hash+1:], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		s = strings.TrimSpace(s[:hash])
	}

	key, value, _ = strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", nil, fmt.Errorf("missing node key")
	}
	return key, value, tags, nil
}
