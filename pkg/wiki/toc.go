package wiki

import "strings"

// TOCEntry is one heading in a section document. Depth counts the '#'
// markers, so "# Title" is depth 1.
type TOCEntry struct {
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Depth  int    `json:"depth"`
}

// ExtractTOC scans markdown line by line and returns every heading in
// document order. A heading is any line whose first character is '#';
// indented or fenced headings are not recognized, matching how the
// sidebar outline has always behaved.
func ExtractTOC(markdown string) []TOCEntry {
	toc := []TOCEntry{}

	for _, line := range strings.Split(markdown, "\n") {
		if !strings.HasPrefix(line, "#") {
			continue
		}

		depth := len(line) - len(strings.TrimLeft(line, "#"))
		title := strings.TrimSpace(strings.TrimLeft(line, "# "))

		toc = append(toc, TOCEntry{
			Title:  title,
			Anchor: Slugify(title),
			Depth:  depth,
		})
	}

	return toc
}

// Slugify turns a heading title into its anchor: lowercase, commas and
// ampersands dropped, runs of spaces collapsed into single hyphens.
// "Foo, Bar & Baz" becomes "foo-bar-baz".
func Slugify(title string) string {
	anchor := strings.ToLower(title)
	anchor = strings.ReplaceAll(anchor, "&", "")
	anchor = strings.ReplaceAll(anchor, ",", "")
	return strings.Join(strings.Fields(anchor), "-")
}
