package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// DefaultTitle is used when a document is wrapped without a title.
const DefaultTitle = "Document"

// htmlTemplate wraps converted fragments in a complete HTML5 document.
// The body is expected to end with a newline.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s</body>
</html>
`

// WrapDocument embeds body in an HTML5 skeleton. The title is escaped; the
// body is inserted as is. A non-empty css becomes a <style> block in the head.
func WrapDocument(body, title, css string) string {
	if title == "" {
		title = DefaultTitle
	}
	if body != "" && body[len(body)-1] != '\n' {
		body += "\n"
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), styleBlock(css), body)
}

// styleBlock returns css as a <style> element line, or "" for empty css.
func styleBlock(css string) string {
	if strings.TrimSpace(css) == "" {
		return ""
	}
	return "<style>" + sanitizeCSS(css) + "</style>\n"
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
