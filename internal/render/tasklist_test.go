package render

import (
	"strings"
	"testing"
)

func TestExpandTaskItemsUncheckedAndChecked(t *testing.T) {
	source := strings.Join([]string{
		"# Heading",
		"- [ ] buy milk",
		"- [x] walk dog",
	}, "\n")

	got := ExpandTaskItems(source)
	lines := strings.Split(got, "\n")

	if lines[0] != "# Heading" {
		t.Fatalf("non-task line changed: %q", lines[0])
	}
	if !strings.Contains(lines[1], `data-line="1"`) || strings.Contains(lines[1], "checked") {
		t.Fatalf("unchecked item wrong: %q", lines[1])
	}
	if !strings.Contains(lines[2], `data-line="2"`) || !strings.Contains(lines[2], " checked") {
		t.Fatalf("checked item wrong: %q", lines[2])
	}
	if !strings.Contains(lines[1], "buy milk") {
		t.Fatalf("item text lost: %q", lines[1])
	}
}

func TestExpandTaskItemsLineNumbersCountEveryLine(t *testing.T) {
	source := strings.Join([]string{
		"intro",
		"",
		"- [ ] first",
		"filler",
		"- [X] second",
	}, "\n")

	got := strings.Split(ExpandTaskItems(source), "\n")
	if !strings.Contains(got[2], `data-line="2"`) {
		t.Fatalf("first task should be line 2: %q", got[2])
	}
	if !strings.Contains(got[4], `data-line="4"`) || !strings.Contains(got[4], " checked") {
		t.Fatalf("uppercase X task should be line 4 and checked: %q", got[4])
	}
}

func TestExpandTaskItemsPreservesIndentAndBullet(t *testing.T) {
	got := ExpandTaskItems("  * [ ] nested")
	if !strings.HasPrefix(got, "  * <input") {
		t.Fatalf("indent or bullet lost: %q", got)
	}
	if !strings.Contains(got, `onclick="toggleTask(this)"`) {
		t.Fatalf("toggle hook missing: %q", got)
	}
}

func TestExpandTaskItemsIgnoresNonTasks(t *testing.T) {
	for _, line := range []string{
		"- [y] not a marker",
		"-[ ] no space after bullet",
		"+ [ ] unsupported bullet",
		"[ ] no bullet at all",
	} {
		if got := ExpandTaskItems(line); got != line {
			t.Fatalf("line %q should pass through, got %q", line, got)
		}
	}
}
