package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Bullet (dash or asterisk) immediately followed by a checkbox marker.
var taskItemPattern = regexp.MustCompile(`^(\s*)([-*]) \[([ xX])\] `)

// ExpandTaskItems replaces task-list markers with interactive checkboxes.
// Line numbers are zero-based and counted over every logical line of the
// document, matched or not, so a toggle event can address the exact source
// line on write-back.
func ExpandTaskItems(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		m := taskItemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		checked := ""
		if m[3] == "x" || m[3] == "X" {
			checked = " checked"
		}

		rest := line[len(m[0]):]
		lines[i] = fmt.Sprintf(
			`%s%s <input type="checkbox" class="task" data-line="%d"%s onclick="toggleTask(this)"> %s`,
			m[1], m[2], i, checked, rest,
		)
	}

	return strings.Join(lines, "\n")
}
