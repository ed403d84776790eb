// Package templates holds the HTML fragments served to HTMX clients.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// writeAll writes each fragment in order, stopping at the first error.
func writeAll(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

// ErrorAlert renders a dismissible error box with the support code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<div class="alert alert-error" role="alert"><p class="alert-message">`,
			templ.EscapeString(message),
			`</p>`,
		); err != nil {
			return err
		}
		if action != "" {
			if err := writeAll(w, `<p class="alert-action">`, templ.EscapeString(action), `</p>`); err != nil {
				return err
			}
		}
		return writeAll(w, `<p class="alert-code">Code: `, templ.EscapeString(code), `</p></div>`)
	})
}

// PreviewTable renders detected columns and sample rows of an uploaded CSV.
func PreviewTable(columns []string, rows []map[string]string, totalRows int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<div class="csv-preview"><p class="csv-preview-count">`,
			templ.EscapeString(fmt.Sprintf("%d rows detected", totalRows)),
			`</p><table><thead><tr>`,
		); err != nil {
			return err
		}
		for _, col := range columns {
			if err := writeAll(w, `<th>`, templ.EscapeString(col), `</th>`); err != nil {
				return err
			}
		}
		if err := writeAll(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writeAll(w, `<tr>`); err != nil {
				return err
			}
			for _, col := range columns {
				if err := writeAll(w, `<td>`, templ.EscapeString(row[col]), `</td>`); err != nil {
					return err
				}
			}
			if err := writeAll(w, `</tr>`); err != nil {
				return err
			}
		}
		return writeAll(w, `</tbody></table></div>`)
	})
}

// ImportSummary renders the result of a confirmed import.
func ImportSummary(imported, skipped int, rowErrors []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<div class="import-summary"><p><strong>`,
			templ.EscapeString(fmt.Sprintf("%d imported, %d skipped", imported, skipped)),
			`</strong></p>`,
		); err != nil {
			return err
		}
		if len(rowErrors) > 0 {
			if err := writeAll(w, `<ul class="import-errors">`); err != nil {
				return err
			}
			for _, e := range rowErrors {
				if err := writeAll(w, `<li>`, templ.EscapeString(e), `</li>`); err != nil {
					return err
				}
			}
			if err := writeAll(w, `</ul>`); err != nil {
				return err
			}
		}
		return writeAll(w, `</div>`)
	})
}

// Home is the landing page served to browsers at the root path.
func Home(name, version string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(name)
		return writeAll(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`, title,
			`</title></head><body><main><h1>`, title,
			`</h1><p>Version `, templ.EscapeString(version),
			`</p><p>The API is served under <code>/api</code>. Health: <a href="/health">/health</a></p></main></body></html>`,
		)
	})
}
