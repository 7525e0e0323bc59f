package sbom

import (
	"strings"

	"github.com/quickbom/quickbom/internal/cachedregexp"
	"github.com/quickbom/quickbom/pkg/models"
)

const (
	namedAddressPattern = `^(.*?)\s*<([^<>]*)>$`
	bareAddressPattern  = `^[^@\s<>"]+@[^@\s<>"]+$`
)

// ParseAuthors splits a free-text author field such as
// "Filipe Laíns <lains@riseup.net>, layday <layday@protonmail.com>" into
// individual authors. Entries may be "Name <email>", a bare email address or a
// bare name; entries with neither a name nor an email are dropped.
func ParseAuthors(text string) []models.Author {
	var authors []models.Author

	for _, entry := range splitAuthorList(text) {
		author := parseAuthor(entry)
		if author.IsEmpty() {
			continue
		}
		authors = append(authors, author)
	}

	return authors
}

// splitAuthorList splits on commas that are not inside angle brackets or
// double quotes.
func splitAuthorList(text string) []string {
	var (
		entries []string
		current strings.Builder
		inAngle bool
		inQuote bool
	)

	for _, r := range text {
		switch {
		case r == '"' && !inAngle:
			inQuote = !inQuote
		case r == '<' && !inQuote:
			inAngle = true
		case r == '>' && !inQuote:
			inAngle = false
		case r == ',' && !inAngle && !inQuote:
			entries = append(entries, current.String())
			current.Reset()

			continue
		}
		current.WriteRune(r)
	}
	entries = append(entries, current.String())

	return entries
}

func parseAuthor(entry string) models.Author {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return models.Author{}
	}

	if m := cachedregexp.MustCompile(namedAddressPattern).FindStringSubmatch(entry); m != nil {
		return models.Author{
			Name:  unquote(m[1]),
			Email: strings.TrimSpace(m[2]),
		}
	}

	if cachedregexp.MustCompile(bareAddressPattern).MatchString(entry) {
		return models.Author{Email: entry}
	}

	return models.Author{Name: unquote(entry)}
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
