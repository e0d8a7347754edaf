package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"text/template"

	"github.com/nwidger/jsoncolor"
)

// RenderTemplate executes a text template with tab-separated columns and
// writes the aligned result to w.
func RenderTemplate(w io.Writer, tmpl string, data any) error {
	t, err := template.New("render").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	tabs := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	err = t.Execute(tabs, data)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return tabs.Flush()
}

// RenderJSON writes data as indented JSON, colorized on a TTY.
func RenderJSON(w io.Writer, data any) error {
	raw, err := jsoncolor.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = w.Write(append(raw, '\n'))
	return err
}
