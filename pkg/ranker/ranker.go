// Package ranker scores catalog listings against a free-text book query.
package ranker

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// DefaultLimit is the maximum number of results returned by Rank.
const DefaultLimit = 50

// minISBNQuery is the shortest digit run compared against ISBNs.
const minISBNQuery = 4

// Weights defines the points awarded per kind of match.
type Weights struct {
	ISBNExact     int
	ISBNPartial   int
	TitleExact    int
	TitlePrefix   int
	TitleContains int
	Author        int
	Publisher     int
}

// DefaultWeights returns the default match weights.
func DefaultWeights() Weights {
	return Weights{
		ISBNExact:     120,
		ISBNPartial:   100,
		TitleExact:    80,
		TitlePrefix:   60,
		TitleContains: 40,
		Author:        30,
		Publisher:     15,
	}
}

// Attribute aliases as they appear in MercadoLibre book listings.
var (
	authorKeys    = []string{"Autor", "Author", "Autores"}
	isbnKeys      = []string{"ISBN", "GTIN", "EAN"}
	publisherKeys = []string{"Editorial", "Publisher", "Sello"}
)

// Breakdown shows per-field scores.
type Breakdown struct {
	ISBN      int `json:"isbn"`
	Title     int `json:"title"`
	Author    int `json:"author"`
	Publisher int `json:"publisher"`
	Total     int `json:"total"`
}

// Match is a listing with its score.
type Match struct {
	Item  domain.ListingDetail `json:"item"`
	Score Breakdown            `json:"score"`
}

// Fields holds the searchable, normalized text of a listing.
type Fields struct {
	Title     string
	Author    string
	ISBN      string
	Publisher string
}

// Extract returns the normalized searchable fields of item.
func Extract(item *domain.ListingDetail) Fields {
	return Fields{
		Title:     Fold(item.Title),
		Author:    Fold(attribute(item.Attributes, authorKeys)),
		ISBN:      digits(attribute(item.Attributes, isbnKeys)),
		Publisher: Fold(attribute(item.Attributes, publisherKeys)),
	}
}

// Score computes the match score of a normalized query against f. Multi
// word queries also score every word on its own.
func Score(f Fields, query string, w Weights) Breakdown {
	q := Fold(query)
	if q == "" {
		return Breakdown{}
	}

	b := phrase(f, q, w)
	if words := strings.Fields(q); len(words) > 1 {
		for _, word := range words {
			wb := phrase(f, word, w)
			b.ISBN += wb.ISBN
			b.Title += wb.Title
			b.Author += wb.Author
			b.Publisher += wb.Publisher
		}
	}

	b.Total = b.ISBN + b.Title + b.Author + b.Publisher
	return b
}

func phrase(f Fields, q string, w Weights) Breakdown {
	b := Breakdown{}

	if isbn := digits(q); len(isbn) >= minISBNQuery && f.ISBN != "" && !strings.Contains(isbn, ",") {
		switch {
		case isbnEqual(f.ISBN, isbn):
			b.ISBN = w.ISBNExact
		case strings.Contains(f.ISBN, isbn):
			b.ISBN = w.ISBNPartial
		}
	}

	switch {
	case f.Title == q:
		b.Title = w.TitleExact
	case strings.HasPrefix(f.Title, q):
		b.Title = w.TitlePrefix
	case strings.Contains(f.Title, q):
		b.Title = w.TitleContains
	}

	if f.Author != "" && strings.Contains(f.Author, q) {
		b.Author = w.Author
	}
	if f.Publisher != "" && strings.Contains(f.Publisher, q) {
		b.Publisher = w.Publisher
	}

	return b
}

// Rank scores every item against query and returns the best limit matches.
// Items scoring zero are excluded. Ties put active listings first, then
// order by title. A blank query returns an empty result.
func Rank(items []domain.ListingDetail, query string, limit int, w Weights) []Match {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	if Fold(query) == "" {
		return []Match{}
	}

	matches := make([]Match, 0)
	for i := range items {
		b := Score(Extract(&items[i]), query, w)
		if b.Total > 0 {
			matches = append(matches, Match{Item: items[i], Score: b})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Score.Total, a.Score.Total); c != 0 {
			return c
		}
		aActive := a.Item.Status == domain.StatusActive
		bActive := b.Item.Status == domain.StatusActive
		if aActive != bActive {
			if aActive {
				return -1
			}
			return 1
		}
		return cmp.Compare(Fold(a.Item.Title), Fold(b.Item.Title))
	})

	return matches[:min(limit, len(matches))]
}

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s, strips diacritics and collapses whitespace.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// digits drops hyphens and spaces from an ISBN-like value. Anything else
// that is not a digit or an X check character makes it a non-ISBN.
func digits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == 'x' || r == 'X':
			sb.WriteRune('X')
		case r == ',':
			sb.WriteRune(',')
		case r == '-' || r == ' ':
		default:
			return ""
		}
	}
	return sb.String()
}

// isbnEqual reports whether any comma-separated code in field equals q.
func isbnEqual(field, q string) bool {
	return slices.Contains(strings.Split(field, ","), q)
}

// attribute returns the first non-empty value among keys, matching keys
// exactly first and then case and accent insensitively.
func attribute(attrs map[string]string, keys []string) string {
	for _, k := range keys {
		if v := attrs[k]; v != "" {
			return v
		}
	}
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		folded := Fold(name)
		for _, k := range keys {
			if folded == Fold(k) && attrs[name] != "" {
				return attrs[name]
			}
		}
	}
	return ""
}
