package entity

import "time"

// Site is one construction project in the content store. Seeded sites
// use readable keys (e.g. "harbor_bridge"); uploaded projects get a
// generated "project_" id.
type Site struct {
	Id          string
	Name        string
	Location    string
	Status      string
	Documents   []string
	LastUpdated time.Time
	Progress    int
	Sections    []SectionRef
}

// SectionRef is an ordered entry in a site's section list. Order is part
// of the content: the sidebar renders sections exactly as stored.
type SectionRef struct {
	Id    string
	Title string
}

// Section returns the section ref for the given id.
func (s *Site) Section(sectionId string) (SectionRef, bool) {
	for _, ref := range s.Sections {
		if ref.Id == sectionId {
			return ref, true
		}
	}
	return SectionRef{}, false
}
