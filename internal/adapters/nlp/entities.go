package nlp

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntityRecognizer = (*EntityRecognizer)(nil)

// Labels produced by Extract. PERSON and GPE come from the statistical
// model, the rest from pattern matching.
const (
	LabelPerson = "PERSON"
	LabelGPE    = "GPE"
	LabelOrg    = "ORG"
	LabelMoney  = "MONEY"
	LabelDate   = "DATE"
)

var (
	moneyPattern = regexp.MustCompile(`[$€£]\s?\d[\d,]*(?:\.\d+)?|\d[\d,]*(?:\.\d+)?\s?(?:dollars|euros|pounds|USD|EUR|GBP)`)
	datePattern  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?\b|\b\d{4}-\d{2}-\d{2}\b`)
	orgPattern   = regexp.MustCompile(`\b[A-Z][A-Za-z&]*(?:\s+[A-Z][A-Za-z&]*)*\s+(?:Inc|Corp|Corporation|Ltd|LLC|GmbH|AG|Co)\.?\b`)
)

// EntityRecognizer extracts named entities using the prose statistical
// model, augmented with patterns for money amounts, dates and
// organization suffixes the model does not label.
type EntityRecognizer struct{}

// NewEntityRecognizer creates a new EntityRecognizer.
func NewEntityRecognizer() *EntityRecognizer {
	return &EntityRecognizer{}
}

// Extract returns all entities found in text in order of appearance,
// model hits first. Duplicate surface forms are kept so callers can
// count mentions.
func (r *EntityRecognizer) Extract(text string) ([]domain.Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to analyze document")
	}

	var entities []domain.Entity
	seen := map[string]bool{}
	for _, ent := range doc.Entities() {
		entities = append(entities, domain.Entity{Text: ent.Text, Label: ent.Label})
		seen[strings.ToLower(ent.Text)] = true
	}

	for _, match := range orgPattern.FindAllString(text, -1) {
		if !seen[strings.ToLower(match)] {
			entities = append(entities, domain.Entity{Text: match, Label: LabelOrg})
		}
	}
	for _, match := range moneyPattern.FindAllString(text, -1) {
		entities = append(entities, domain.Entity{Text: match, Label: LabelMoney})
	}
	for _, match := range datePattern.FindAllString(text, -1) {
		entities = append(entities, domain.Entity{Text: match, Label: LabelDate})
	}
	return entities, nil
}
