package rag

import (
	"sort"
	"strings"
	"unicode"
)

const snippetLength = 100

// Document is a searchable knowledge-base entry. Title, content and tags
// all contribute to the posting lists.
type Document struct {
	ID      string
	Title   string
	Content string
	Tags    []string
}

// Result is a ranked hit with a truncated content snippet.
type Result struct {
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

// Index is an in-memory inverted index over a fixed document snapshot.
// Building is a pure function of the snapshot; rebuilding from the same
// snapshot yields an equivalent index.
type Index struct {
	postings map[string]map[string]int // token -> doc id -> term frequency
	docs     map[string]Document
	order    []string // stable doc order for deterministic ties
}

// Tokenize lower-cases the input and splits on any non-alphanumeric rune.
// The same tokenizer is used at build and query time.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return fields
}

// Build constructs an index from the given document snapshot.
func Build(docs []Document) *Index {
	ix := &Index{
		postings: make(map[string]map[string]int),
		docs:     make(map[string]Document, len(docs)),
		order:    make([]string, 0, len(docs)),
	}

	for _, doc := range docs {
		ix.docs[doc.ID] = doc
		ix.order = append(ix.order, doc.ID)

		tokens := Tokenize(doc.Title)
		tokens = append(tokens, Tokenize(doc.Content)...)
		tokens = append(tokens, Tokenize(strings.Join(doc.Tags, " "))...)

		for _, token := range tokens {
			if ix.postings[token] == nil {
				ix.postings[token] = make(map[string]int)
			}
			ix.postings[token][doc.ID]++
		}
	}

	return ix
}

// Query scores every candidate document against the query tokens and
// returns up to limit results by descending score. The score is the sum
// of matched term frequencies normalized by query length, so a single
// strong term in a short query still ranks above 0.5. An empty query or
// a query with no matches returns an empty slice.
func (ix *Index) Query(text string, limit int) []Result {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return []Result{}
	}

	raw := make(map[string]int)
	for _, token := range tokens {
		for docID, tf := range ix.postings[token] {
			raw[docID] += tf
		}
	}
	if len(raw) == 0 {
		return []Result{}
	}

	type scored struct {
		id    string
		score float64
	}
	candidates := make([]scored, 0, len(raw))
	for _, docID := range ix.order {
		if sum, ok := raw[docID]; ok {
			candidates = append(candidates, scored{
				id:    docID,
				score: float64(sum) / float64(len(tokens)),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		doc := ix.docs[c.id]
		results = append(results, Result{
			Title:   doc.Title,
			Snippet: snippet(doc.Content),
			Score:   c.score,
		})
	}
	return results
}

func snippet(content string) string {
	if len(content) <= snippetLength {
		return content
	}
	return content[:snippetLength] + "..."
}
