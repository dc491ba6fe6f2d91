package store

import (
	"time"

	"construction-deepwiki-be/internal/entity"
)

// Session is the navigation state of one browser session, held in
// memory for the session TTL. Each session owns its own state; nothing
// here is shared across sessions.
type Session struct {
	Id          string `json:"id"`
	CurrentPage string `json:"current_page"` // "overview" | "site_detail" | "question_answer" | "logging_dashboard"

	// Reading context. Empty site id means no project is open.
	CurrentSiteId    string `json:"current_site_id"`
	CurrentSectionId string `json:"current_section_id"`

	// Pending question, set on submit and answered on the first Q&A
	// page render afterwards.
	PendingQuestion string `json:"pending_question"`
	PendingQAId     string `json:"pending_qa_id"`

	// Answered questions keyed by "siteId/sectionId".
	History map[string][]entity.QAExchange `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UserAgent string    `json:"user_agent"`
}

// HistoryKey builds the chat-history key for a reading context.
func HistoryKey(siteId, sectionId string) string {
	return siteId + "/" + sectionId
}

// RecordExchange appends an answered question to the history of the
// given context.
func (s *Session) RecordExchange(siteId, sectionId string, exchange entity.QAExchange) {
	if s.History == nil {
		s.History = make(map[string][]entity.QAExchange)
	}
	key := HistoryKey(siteId, sectionId)
	s.History[key] = append(s.History[key], exchange)
}

// Exchanges returns the recorded history for a context, oldest first.
func (s *Session) Exchanges(siteId, sectionId string) []entity.QAExchange {
	if s.History == nil {
		return nil
	}
	return s.History[HistoryKey(siteId, sectionId)]
}

// PendingExchange returns the recorded exchange for the pending QA id,
// if the question has already been answered.
func (s *Session) PendingExchange(siteId, sectionId string) (entity.QAExchange, bool) {
	for _, ex := range s.Exchanges(siteId, sectionId) {
		if ex.Id == s.PendingQAId {
			return ex, true
		}
	}
	return entity.QAExchange{}, false
}
