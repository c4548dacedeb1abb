package parse

import (
	"go/ast"
	"strings"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
)

// Marker is the directive comment marking a type for generation.
const Marker = "//interclap:derive"

type markerOptions struct {
	// context is the expression of the context type.
	context string
}

// findMarker returns the marker comment in the doc comment.
func findMarker(doc *ast.CommentGroup) *ast.Comment {
	if doc == nil {
		return nil
	}
	for _, c := range doc.List {
		if c.Text == Marker || strings.HasPrefix(c.Text, Marker+" ") || strings.HasPrefix(c.Text, Marker+"\t") {
			return c
		}
	}
	return nil
}

// parseMarker parses the options of a marker comment:
//
//	//interclap:derive context=GlobalContext
//
// A trailing comment after the options is ignored.
func parseMarker(pkger codefmt.Pkger, c *ast.Comment) (markerOptions, error) {
	var opts markerOptions
	for _, field := range strings.Fields(strings.TrimPrefix(c.Text, Marker)) {
		if strings.HasPrefix(field, "//") {
			break
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return opts, codefmt.Errorf(pkger, c, "malformed option %q; want key=value", field)
		}

		switch key {
		case "context":
			if opts.context != "" {
				return opts, codefmt.Errorf(pkger, c, "duplicate option %q", key)
			}
			opts.context = value
		default:
			return opts, codefmt.Errorf(pkger, c, "unknown option %q", key)
		}
	}
	return opts, nil
}
