package services

import (
	"context"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/database/words"
	"github.com/mrlokans/buzzwords/internal/entities"
	"github.com/mrlokans/buzzwords/internal/validation"
)

const (
	MsgWordFieldsRequired = "Word, definition, part of speech, and username are required"
	MsgSingleLetter       = "Please provide a single letter (a-z, A-Z)"
	MsgSearchTermRequired = "Search term is required"
	MsgUsernameRequired   = "Username is required"
)

// SearchPosition selects where a search term must occur.
type SearchPosition string

const (
	SearchStart SearchPosition = "start" // word text begins with the term
	SearchEnd   SearchPosition = "end"   // word text ends with the term
	SearchAny   SearchPosition = "any"   // word text or definition contains the term
)

// ParseSearchPosition maps a raw query value to a position. Anything
// unrecognized, including empty, means SearchAny.
func ParseSearchPosition(raw string) SearchPosition {
	switch SearchPosition(validation.NormalizeKey(raw)) {
	case SearchStart:
		return SearchStart
	case SearchEnd:
		return SearchEnd
	default:
		return SearchAny
	}
}

// SubmitWordInput is the word submission payload.
type SubmitWordInput struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms"`
	Username     string   `json:"username"`
}

// WordService implements word submission and the read-side queries.
type WordService struct {
	words     WordStore
	validator *validation.Validator
}

func NewWordService(store WordStore, validator *validation.Validator) *WordService {
	return &WordService{words: store, validator: validator}
}

// ListAll returns every word ordered by word text.
func (s *WordService) ListAll(ctx context.Context) ([]entities.Word, error) {
	return s.words.List(ctx, words.Filter{})
}

// ListByLetter returns words whose text begins with letter.
func (s *WordService) ListByLetter(ctx context.Context, letter string) ([]entities.Word, error) {
	if !validation.IsSingleLetter(letter) {
		return nil, apperrors.InvalidArgument(MsgSingleLetter)
	}
	return s.words.List(ctx, words.Filter{Prefix: letter})
}

// Search matches term literally and case-insensitively at the given
// position. It returns the position actually applied.
func (s *WordService) Search(ctx context.Context, term, position string) ([]entities.Word, SearchPosition, error) {
	pos := ParseSearchPosition(position)
	term = validation.NormalizeText(term)
	if term == "" {
		return nil, pos, apperrors.MissingField(MsgSearchTermRequired, "term")
	}

	var filter words.Filter
	switch pos {
	case SearchStart:
		filter.Prefix = term
	case SearchEnd:
		filter.Suffix = term
	default:
		filter.Contains = term
	}

	list, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, pos, err
	}
	return list, pos, nil
}

// ListByOwner returns the words submitted by username, along with the
// normalized username that was matched.
func (s *WordService) ListByOwner(ctx context.Context, username string) ([]entities.Word, string, error) {
	username = validation.NormalizeKey(username)
	if username == "" {
		return nil, "", apperrors.MissingField(MsgUsernameRequired, "username")
	}

	list, err := s.words.List(ctx, words.Filter{Username: username})
	if err != nil {
		return nil, username, err
	}
	return list, username, nil
}

// Submit normalizes, checks and stores a new word.
func (s *WordService) Submit(ctx context.Context, input SubmitWordInput) (*entities.Word, error) {
	word := &entities.Word{
		Word:         input.Word,
		Definition:   input.Definition,
		PartOfSpeech: entities.PartOfSpeech(input.PartOfSpeech),
		Synonyms:     input.Synonyms,
		Antonyms:     input.Antonyms,
		Username:     input.Username,
	}
	validation.NormalizeWord(word)

	if missing := validation.MissingWordFields(word); len(missing) > 0 {
		return nil, apperrors.MissingField(MsgWordFieldsRequired, missing...)
	}
	if err := s.validator.Validate(word); err != nil {
		return nil, err
	}

	if err := s.words.Create(ctx, word); err != nil {
		return nil, err
	}
	return word, nil
}
