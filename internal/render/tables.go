package render

import "strings"

// ExpandTables rewrites pipe-delimited markdown tables into HTML tables
// ahead of conversion. A table starts at a line containing a pipe whose
// immediate successor is a separator line; it extends over every contiguous
// following line that is a data or separator row. Non-table lines pass
// through unchanged.
func ExpandTables(text string) string {
	lines := strings.Split(text, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.Contains(line, "|") || i+1 >= len(lines) || !isSeparatorRow(lines[i+1]) {
			out = append(out, line)
			continue
		}

		rows := [][]string{splitCells(line)}
		j := i + 2
		for j < len(lines) {
			next := lines[j]
			if isSeparatorRow(next) {
				j++
				continue
			}
			if !strings.Contains(next, "|") {
				break
			}
			rows = append(rows, splitCells(next))
			j++
		}

		out = append(out, renderTable(rows))
		i = j - 1
	}

	return strings.Join(out, "\n")
}

// A separator row is made of dashes, colons, pipes and whitespace only, and
// holds at least one dash and one pipe.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	hasDash, hasPipe := false, false
	for _, r := range trimmed {
		switch r {
		case '-':
			hasDash = true
		case '|':
			hasPipe = true
		case ':', ' ', '\t':
		default:
			return false
		}
	}

	return hasDash && hasPipe
}

func splitCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

func renderTable(rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, cell := range rows[0] {
		b.WriteString("<th>")
		b.WriteString(escapeCell(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range rows[1:] {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(escapeCell(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// Cell text escapes exactly the three characters the rendering surface
// would otherwise interpret.
func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "&", "&amp;")
	cell = strings.ReplaceAll(cell, "<", "&lt;")
	cell = strings.ReplaceAll(cell, ">", "&gt;")
	return cell
}
