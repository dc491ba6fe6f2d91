package memory

import (
	"sync"

	"construction-deepwiki-be/internal/entity"
)

// ContentRepository is the process-wide content store: sites, section
// markdown, and the static citation table. Everything is read-only
// after seeding except AddSite, which the ingest worker calls from its
// own goroutine, hence the lock.
type ContentRepository struct {
	mu        sync.RWMutex
	sites     map[string]*entity.Site
	order     []string
	sections  map[string]map[string]string
	citations map[string][]entity.SourceCitation
}

func NewContentRepository() *ContentRepository {
	r := &ContentRepository{
		sites:     make(map[string]*entity.Site),
		sections:  make(map[string]map[string]string),
		citations: make(map[string][]entity.SourceCitation),
	}
	seedContent(r)
	return r
}

// ListSites returns all sites in insertion order. Seeded sites first,
// uploaded projects after, matching the overview card order.
func (r *ContentRepository) ListSites() []entity.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sites := make([]entity.Site, 0, len(r.order))
	for _, id := range r.order {
		sites = append(sites, *r.sites[id])
	}
	return sites
}

func (r *ContentRepository) GetSite(siteId string) (entity.Site, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	site, ok := r.sites[siteId]
	if !ok {
		return entity.Site{}, false
	}
	return *site, true
}

// AddSite appends a new project. Sites are never updated or removed.
func (r *ContentRepository) AddSite(site entity.Site) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sites[site.Id]; exists {
		return
	}
	copied := site
	r.sites[site.Id] = &copied
	r.order = append(r.order, site.Id)
}

// SectionContent returns the seeded markdown for a (site, section)
// pair. A miss is normal: most sections have no written content.
func (r *ContentRepository) SectionContent(siteId, sectionId string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bySection, ok := r.sections[siteId]
	if !ok {
		return "", false
	}
	content, ok := bySection[sectionId]
	return content, ok
}

// CitationsForSection returns the static sources for a section id,
// shared by every site. Sections without an entry return nil.
func (r *ContentRepository) CitationsForSection(sectionId string) []entity.SourceCitation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := r.citations[sectionId]
	if len(sources) == 0 {
		return nil
	}
	out := make([]entity.SourceCitation, len(sources))
	copy(out, sources)
	return out
}

func (r *ContentRepository) setSection(siteId, sectionId, markdown string) {
	if r.sections[siteId] == nil {
		r.sections[siteId] = make(map[string]string)
	}
	r.sections[siteId][sectionId] = markdown
}
