package dto

import "time"

type AskQuestionRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskQuestionResponse struct {
	QAId string `json:"qa_id"`
	Page string `json:"page"`
}

type QAHistoryResponse struct {
	SiteId    string          `json:"site_id"`
	SectionId string          `json:"section_id"`
	Exchanges []QAExchangeDTO `json:"exchanges"`
}

type QAExchangeDTO struct {
	Id             string        `json:"id"`
	Question       string        `json:"question"`
	Answer         string        `json:"answer"`
	Sources        []CitationDTO `json:"sources"`
	AskedAt        time.Time     `json:"asked_at"`
	ProcessingTime float64       `json:"processing_time"`
}
