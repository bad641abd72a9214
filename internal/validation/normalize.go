// Package validation normalizes and validates user-supplied entity fields
// before they reach the store.
//
// Normalization always runs first: text is trimmed, and identity-bearing
// fields (word, part of speech, synonyms, antonyms, username, email) are
// lowercased so uniqueness is case-insensitive. Definitions and personal
// names keep their case.
package validation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mrlokans/buzzwords/internal/entities"
)

// NormalizeText trims surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeKey trims and lowercases.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeList normalizes every entry with NormalizeKey and drops entries
// that end up empty. The result is never nil.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := NormalizeKey(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func NormalizeWord(w *entities.Word) {
	w.Word = NormalizeKey(w.Word)
	w.Definition = NormalizeText(w.Definition)
	w.PartOfSpeech = entities.PartOfSpeech(NormalizeKey(string(w.PartOfSpeech)))
	w.Username = NormalizeKey(w.Username)
	w.Synonyms = NormalizeList(w.Synonyms)
	w.Antonyms = NormalizeList(w.Antonyms)
}

func NormalizeUser(u *entities.User) {
	u.Username = NormalizeKey(u.Username)
	u.Email = NormalizeKey(u.Email)
	u.FirstName = NormalizeText(u.FirstName)
	u.LastName = NormalizeText(u.LastName)
}

// Field pairs a wire field name with its already-normalized value.
type Field struct {
	Name  string
	Value string
}

// MissingFields returns the names of fields whose value is empty, in order.
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// MissingWordFields reports which required word fields are empty.
func MissingWordFields(w *entities.Word) []string {
	return MissingFields(
		Field{Name: "word", Value: w.Word},
		Field{Name: "definition", Value: w.Definition},
		Field{Name: "partOfSpeech", Value: string(w.PartOfSpeech)},
		Field{Name: "username", Value: w.Username},
	)
}

// IsSingleLetter reports whether s is exactly one ASCII letter.
func IsSingleLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParseID returns the canonical form of a UUID identifier, or false when
// raw is not one.
func ParseID(raw string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so term matches literally when the
// pattern is used with ESCAPE '\'.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
