package mapper

import (
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
)

type QAMapper struct {
	siteMapper *SiteMapper
}

func NewQAMapper() *QAMapper {
	return &QAMapper{siteMapper: NewSiteMapper()}
}

func (m *QAMapper) ExchangeToDTO(ex entity.QAExchange) dto.QAExchangeDTO {
	return dto.QAExchangeDTO{
		Id:             ex.Id,
		Question:       ex.Question,
		Answer:         ex.Answer,
		Sources:        m.siteMapper.CitationsToDTOs(ex.Citations),
		AskedAt:        ex.AskedAt,
		ProcessingTime: ex.Duration.Seconds(),
	}
}

func (m *QAMapper) ExchangesToDTOs(exchanges []entity.QAExchange) []dto.QAExchangeDTO {
	out := make([]dto.QAExchangeDTO, 0, len(exchanges))
	for _, ex := range exchanges {
		out = append(out, m.ExchangeToDTO(ex))
	}
	return out
}
