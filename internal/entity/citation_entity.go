package entity

// SourceCitation is a fabricated document reference. Citations are
// looked up by section id from a static table and never derived from
// the query or the section content.
type SourceCitation struct {
	Document   string
	Page       int
	Excerpt    string
	Confidence float64
	TableRef   *string
	ImageRef   *string
}
