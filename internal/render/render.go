// Package render produces the admin panel markup. Every call renders a
// whole tab from a state snapshot; there is no partial DOM patching, so a
// renderer never has to reconcile stale fragments.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"cema-admin/internal/service/stats"
	"cema-admin/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded tab templates. It is safe for concurrent
// use once constructed.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"title": func(s string) string {
			if len(s) == 0 {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"statusLabel": func(s string) string {
			labels := map[string]string{
				"pending":     "Pending",
				"in_progress": "In Progress",
				"completed":   "Completed",
			}
			if l, ok := labels[s]; ok {
				return l
			}
			return s
		},
		"rupiah": func(v any) string {
			switch n := v.(type) {
			case int64:
				return "Rp " + groupThousands(n)
			case int:
				return "Rp " + groupThousands(int64(n))
			case float64:
				return "Rp " + groupThousands(int64(n))
			default:
				return fmt.Sprintf("Rp %v", v)
			}
		},
		"activeLabel": func(active bool) string {
			if active {
				return "Active"
			}
			return "Inactive"
		},
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// tabData is the payload handed to every tab template. Stats is only
// consulted by the overview but computing it is cheap enough to always
// carry.
type tabData struct {
	Snap  state.Snapshot
	Stats stats.Stats
}

// Tab writes the markup for the named tab. Unknown names report an error
// rather than rendering an empty page.
func (r *Renderer) Tab(w io.Writer, name string, snap state.Snapshot) error {
	found := false
	for _, t := range state.Tabs {
		if t == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown tab %q", name)
	}
	data := tabData{Snap: snap, Stats: stats.Compute(snap)}
	if err := r.tmpl.ExecuteTemplate(w, name+".html", data); err != nil {
		return fmt.Errorf("render tab %s: %w", name, err)
	}
	return nil
}

func groupThousands(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
