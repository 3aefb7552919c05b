package render

import (
	"strings"
	"testing"
)

func TestFragmentRunsFullPipeline(t *testing.T) {
	r := NewRenderer()
	source := strings.Join([]string{
		"# Title",
		"",
		"- [ ] task",
		"",
		"| A |",
		"| - |",
		"| 1 |",
	}, "\n")

	got := r.Fragment(source)

	if !strings.Contains(got, "<h1") {
		t.Fatalf("heading not rendered:\n%s", got)
	}
	if !strings.Contains(got, "<th>A</th>") {
		t.Fatalf("table markup lost in conversion (raw HTML must pass through):\n%s", got)
	}
	if !strings.Contains(got, `data-line="2"`) {
		t.Fatalf("task checkbox lost or misnumbered:\n%s", got)
	}
}

func TestFragmentTaskBelowTableKeepsSourceLine(t *testing.T) {
	r := NewRenderer()
	source := strings.Join([]string{
		"| A |",
		"| - |",
		"| 1 |",
		"- [ ] buy milk",
	}, "\n")

	got := r.Fragment(source)

	if !strings.Contains(got, "<th>A</th>") {
		t.Fatalf("table not expanded:\n%s", got)
	}
	// The table rewrite grows the document, but the checkbox must still
	// address source line 3 or the toggle write-back edits the wrong line.
	if !strings.Contains(got, `data-line="3"`) {
		t.Fatalf("checkbox does not address its source line:\n%s", got)
	}
}

func TestFragmentTypographer(t *testing.T) {
	r := NewRenderer()
	got := r.Fragment(`He said "hello" -- twice`)

	if strings.Contains(got, `"hello"`) {
		t.Fatalf("straight quotes not converted:\n%s", got)
	}
	if !strings.Contains(got, "&ldquo;") && !strings.Contains(got, "“") {
		t.Fatalf("expected smart quotes in output:\n%s", got)
	}
}

func TestDocumentWrapsFragment(t *testing.T) {
	r := NewRenderer()
	got := r.Document("My <Note>", "body text")

	if !strings.Contains(got, "<!DOCTYPE html>") {
		t.Fatalf("not a full document:\n%s", got)
	}
	if !strings.Contains(got, "<title>My &lt;Note&gt;</title>") {
		t.Fatalf("title not escaped:\n%s", got)
	}
	if !strings.Contains(got, "body text") {
		t.Fatalf("body missing:\n%s", got)
	}
	if !strings.Contains(got, "function toggleTask(el)") {
		t.Fatalf("toggle script missing:\n%s", got)
	}
	if !strings.Contains(got, "prefers-color-scheme: dark") {
		t.Fatalf("dark palette missing:\n%s", got)
	}
}
