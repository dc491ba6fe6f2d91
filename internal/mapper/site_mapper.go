package mapper

import (
	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
)

type SiteMapper struct{}

func NewSiteMapper() *SiteMapper {
	return &SiteMapper{}
}

func (m *SiteMapper) SiteToCard(s entity.Site) dto.SiteCardDTO {
	return dto.SiteCardDTO{
		Id:            s.Id,
		Name:          s.Name,
		Location:      s.Location,
		Status:        s.Status,
		LastUpdated:   s.LastUpdated.Format(constant.LastUpdatedLayout),
		DocumentCount: len(s.Documents),
		Progress:      s.Progress,
	}
}

func (m *SiteMapper) SitesToCards(sites []entity.Site) []dto.SiteCardDTO {
	cards := make([]dto.SiteCardDTO, 0, len(sites))
	for _, s := range sites {
		cards = append(cards, m.SiteToCard(s))
	}
	return cards
}

func (m *SiteMapper) SiteToHeader(s entity.Site) dto.SiteHeaderDTO {
	return dto.SiteHeaderDTO{
		Id:            s.Id,
		Name:          s.Name,
		Progress:      s.Progress,
		DocumentCount: len(s.Documents),
	}
}

func (m *SiteMapper) SectionsToLinks(s entity.Site, currentSectionId string) []dto.SectionLinkDTO {
	links := make([]dto.SectionLinkDTO, 0, len(s.Sections))
	for _, ref := range s.Sections {
		links = append(links, dto.SectionLinkDTO{
			Id:      ref.Id,
			Title:   ref.Title,
			Current: ref.Id == currentSectionId,
		})
	}
	return links
}

func (m *SiteMapper) CitationToDTO(c entity.SourceCitation) dto.CitationDTO {
	return dto.CitationDTO{
		Document:   c.Document,
		Page:       c.Page,
		Excerpt:    c.Excerpt,
		Confidence: c.Confidence,
		TableRef:   c.TableRef,
		ImageRef:   c.ImageRef,
	}
}

func (m *SiteMapper) CitationsToDTOs(citations []entity.SourceCitation) []dto.CitationDTO {
	out := make([]dto.CitationDTO, 0, len(citations))
	for _, c := range citations {
		out = append(out, m.CitationToDTO(c))
	}
	return out
}
