package entity

import "time"

// QAExchange is one answered question, recorded in the session's chat
// history under its (site, section) context.
type QAExchange struct {
	Id        string
	Question  string
	Answer    string
	Citations []SourceCitation
	AskedAt   time.Time
	Duration  time.Duration
}
