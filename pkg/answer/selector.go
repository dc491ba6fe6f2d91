package answer

import (
	"fmt"
	"strings"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/entity"
)

// Result is a selected answer with the sources attached to it.
type Result struct {
	Answer  string
	Sources []entity.SourceCitation
}

// Selector picks a canned answer by keyword. There is no retrieval:
// answers are fixed texts and sources come from a static table, so the
// same trigger keyword always yields the identical response.
type Selector struct {
	safetySources []entity.SourceCitation
}

func NewSelector() *Selector {
	tableRef := constant.SafetyCitationTableRef
	return &Selector{
		safetySources: []entity.SourceCitation{
			{
				Document:   constant.SafetyCitationDocument,
				Page:       constant.SafetyCitationPage,
				Excerpt:    constant.SafetyCitationExcerpt,
				Confidence: constant.SafetyCitationConfidence,
				TableRef:   &tableRef,
			},
		},
	}
}

// Select applies the keyword rules in priority order. sectionSources is
// the static citation list of the open section (may be empty).
//
// Sources attached per rule differ on purpose: load answers carry the
// whole section table, safety answers exactly one fixed source, generic
// answers at most two.
func (s *Selector) Select(siteName, sectionId, query string, sectionSources []entity.SourceCitation) Result {
	lowered := strings.ToLower(query)

	if strings.Contains(lowered, "load") || strings.Contains(lowered, "capacity") {
		return Result{
			Answer:  constant.LoadCapacityAnswer,
			Sources: sectionSources,
		}
	}

	if strings.Contains(lowered, "safety") {
		return Result{
			Answer:  constant.SafetyAnswer,
			Sources: s.safetySources,
		}
	}

	sources := sectionSources
	if len(sources) > constant.GenericAnswerMaxSources {
		sources = sources[:constant.GenericAnswerMaxSources]
	}

	return Result{
		Answer:  fmt.Sprintf(constant.GenericAnswerTemplate, HumanizeSection(sectionId), siteName, query),
		Sources: sources,
	}
}

// HumanizeSection turns a section id into display form:
// "structural_plans" -> "structural plans".
func HumanizeSection(sectionId string) string {
	return strings.ReplaceAll(sectionId, "_", " ")
}

// TitleizeSection turns a section id into heading form:
// "structural_plans" -> "Structural Plans".
func TitleizeSection(sectionId string) string {
	words := strings.Fields(HumanizeSection(sectionId))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
