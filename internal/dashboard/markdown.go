package dashboard

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// newMarkdown returns the converter used for insight bodies. Raw HTML in
// the source is escaped.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
}

// markdownFuncs exposes block and inline rendering to templates.
func markdownFuncs(md goldmark.Markdown) template.FuncMap {
	render := func(src string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return template.FuncMap{
		"markdown": func(src string) (template.HTML, error) {
			out, err := render(src)
			return template.HTML(out), err
		},
		// inline drops the paragraph wrapper of a single line.
		"inline": func(src string) (template.HTML, error) {
			out, err := render(src)
			if err != nil {
				return "", err
			}
			out = strings.TrimSpace(out)
			out = strings.TrimPrefix(out, "<p>")
			out = strings.TrimSuffix(out, "</p>")
			return template.HTML(out), nil
		},
	}
}
