package render

import "strings"

// The wrapper mirrors the rendering surface of the original quick-access
// tool: adaptive light/dark palette keyed to the color-scheme preference,
// monospace code styling, table rules matching the generated markup, and a
// script that forwards checkbox toggles to the host with the source line
// number and the new state.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>__TITLE__</title>
<style>
:root {
  color-scheme: light dark;
  --fg: #1e1e1e;
  --bg: #ffffff;
  --muted: #6a6a6a;
  --border: #d0d0d0;
  --code-bg: #f2f2f2;
}
@media (prefers-color-scheme: dark) {
  :root {
    --fg: #dadada;
    --bg: #1e1e1e;
    --muted: #9a9a9a;
    --border: #3a3a3a;
    --code-bg: #2a2a2a;
  }
}
body {
  color: var(--fg);
  background: var(--bg);
  font-family: -apple-system, "Segoe UI", sans-serif;
  line-height: 1.5;
  max-width: 46em;
  margin: 1.5em auto;
  padding: 0 1em;
}
code, pre {
  font-family: "SF Mono", Menlo, Consolas, monospace;
  background: var(--code-bg);
  border-radius: 4px;
}
pre { padding: 0.75em; overflow-x: auto; }
code { padding: 0.1em 0.3em; }
pre code { padding: 0; }
blockquote {
  color: var(--muted);
  border-left: 3px solid var(--border);
  margin-left: 0;
  padding-left: 1em;
}
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid var(--border); padding: 0.35em 0.7em; }
th { background: var(--code-bg); }
input.task { margin-right: 0.3em; }
</style>
</head>
<body>
__BODY__
<script>
function toggleTask(el) {
  var line = parseInt(el.getAttribute("data-line"), 10);
  if (window.vaultray && window.vaultray.toggleCheckbox) {
    window.vaultray.toggleCheckbox(line, el.checked);
  }
}
</script>
</body>
</html>
`

func wrapDocument(title, body string) string {
	doc := strings.Replace(documentShell, "__TITLE__", escapeCell(title), 1)
	return strings.Replace(doc, "__BODY__", body, 1)
}
