// Package output renders console output for the stressd commands.
package output

import (
	"fmt"
	"io"
)

// Route describes one endpoint for the startup banner.
type Route struct {
	Method      string
	Path        string
	Description string
}

// PrintBanner writes the startup banner listing the listen URL and routes.
func PrintBanner(w io.Writer, scheme *ColorScheme, url string, routes []Route) {
	fmt.Fprintf(w, "%s listening on %s\n", scheme.Title.Sprint("stressd"), scheme.URL.Sprint(url))
	fmt.Fprintln(w, "Endpoints:")
	for _, r := range routes {
		fmt.Fprintf(w, "  - %s %s",
			scheme.Method.Sprintf("%-4s", r.Method),
			scheme.URL.Sprint(r.Path))
		if r.Description != "" {
			fmt.Fprintf(w, "  %s", r.Description)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Send SIGTERM to stop")
}
