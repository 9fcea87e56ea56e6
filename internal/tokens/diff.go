package tokens

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Flatten lists every token of s as a sorted "path: value" line, where path
// joins nested keys and list indexes with dots.
func Flatten(s Snapshot) ([]string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("flatten snapshot: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("flatten snapshot: %w", err)
	}

	var lines []string
	walk("", tree, &lines)
	sort.Strings(lines)
	return lines, nil
}

func walk(path string, node any, out *[]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			walk(join(path, key), child, out)
		}
	case []any:
		for i, child := range v {
			walk(join(path, strconv.Itoa(i)), child, out)
		}
	default:
		*out = append(*out, fmt.Sprintf("%s: %v", path, v))
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Diff reports the tokens that differ between two snapshots as removed (-)
// and added (+) lines under a from/to header. Identical snapshots give "".
func Diff(from, to Snapshot, fromLabel, toLabel string) (string, error) {
	before, err := Flatten(from)
	if err != nil {
		return "", err
	}
	after, err := Flatten(to)
	if err != nil {
		return "", err
	}

	a, b := strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n"
	if a == b {
		return "", nil
	}

	dmp := diffmatchpatch.New()
	ca, cb, lineIndex := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lineIndex)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", fromLabel, toLabel)
	written := 0
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String(), nil
			}
			buf.WriteString(prefix + line + "\n")
			written++
		}
	}
	return buf.String(), nil
}
