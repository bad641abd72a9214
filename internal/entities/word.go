package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
)

// PartsOfSpeech lists every accepted part of speech.
var PartsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun,
	PartOfSpeechVerb,
	PartOfSpeechAdjective,
	PartOfSpeechAdverb,
	PartOfSpeechPronoun,
	PartOfSpeechPreposition,
	PartOfSpeechConjunction,
	PartOfSpeechInterjection,
}

func (p PartOfSpeech) Valid() bool {
	for _, known := range PartsOfSpeech {
		if p == known {
			return true
		}
	}
	return false
}

// Word is a user-submitted dictionary entry. The same spelling may exist
// once per (part of speech, owner).
type Word struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"id"`
	Word          string                      `gorm:"size:255;not null;uniqueIndex:idx_words_word_pos_user,priority:1" json:"word" validate:"required"`
	Definition    string                      `gorm:"type:text;not null" json:"definition" validate:"required"`
	DefinitionKey string                      `gorm:"type:text" json:"-"`
	PartOfSpeech  PartOfSpeech                `gorm:"size:20;not null;uniqueIndex:idx_words_word_pos_user,priority:2" json:"partOfSpeech" validate:"required,partofspeech"`
	Synonyms      datatypes.JSONSlice[string] `json:"synonyms"`
	Antonyms      datatypes.JSONSlice[string] `json:"antonyms"`
	Username      string                      `gorm:"size:64;not null;index;uniqueIndex:idx_words_word_pos_user,priority:3" json:"username" validate:"required"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Word) TableName() string {
	return "words"
}

// BeforeSave keeps DefinitionKey in step with Definition. SQLite's LOWER
// and LIKE only fold ASCII, so searches match against this column.
func (w *Word) BeforeSave(tx *gorm.DB) error {
	w.DefinitionKey = strings.ToLower(w.Definition)
	return nil
}

func (w *Word) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
