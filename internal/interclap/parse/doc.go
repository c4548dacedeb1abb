package parse

import "strings"

// PromptText returns the text shown when prompting for a field.
//
// A field without doc comment and without directives is prompted with its
// name. Otherwise the doc comment is used: as it is with
// verbatim_doc_comment, or reflowed so that the lines of a paragraph are
// joined by a space. The result may be empty.
func PromptText(name, doc string, d Directives) string {
	doc = strings.TrimSpace(doc)
	if doc == "" && !d.Present() {
		return name
	}
	if d.Has(VerbatimDocComment) {
		return doc
	}
	return reflow(doc)
}

// reflow joins the lines of each paragraph with a space and separates
// paragraphs with a blank line.
func reflow(doc string) string {
	var paras []string
	var lines []string
	flush := func() {
		if len(lines) != 0 {
			paras = append(paras, strings.Join(lines, " "))
			lines = nil
		}
	}

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	flush()

	return strings.Join(paras, "\n\n")
}

// Summary returns the first paragraph of a doc comment, reflowed. It is the
// help text of command line members.
func Summary(doc string) string {
	para, _, _ := strings.Cut(reflow(strings.TrimSpace(doc)), "\n\n")
	return para
}
