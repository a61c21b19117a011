// Package retrieval ranks a small fixed corpus against free-text queries using
// TF-IDF weighting and cosine similarity.
//
// Weighting follows the usual defaults of TF-IDF vectorizers: terms are
// lowercased runs of at least two word characters, term frequency is the raw
// count, idf is ln((1+n)/(1+df)) + 1 and every vector is L2-normalized. The
// vocabulary is fixed when the index is built; unseen query terms are ignored.
package retrieval

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// ErrEmptyCorpus is returned by Build when the documents contain no terms.
var ErrEmptyCorpus = errors.New("empty vocabulary: documents contain no terms")

var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Document is a labeled text added to the index.
type Document struct {
	Label string
	Text  string
}

// Match is a ranked document.
type Match struct {
	Label string
	Text  string
	// Position is the document index in corpus order.
	Position int
	// Score is the cosine similarity with the query, in [0, 1].
	Score float64
}

// vector is a sparse vector sorted by dimension.
type vector []entry

type entry struct {
	dim    int
	weight float64
}

// Index is immutable after Build and safe for concurrent use.
type Index struct {
	docs       []Document
	vocabulary map[string]int
	idf        []float64
	vectors    []vector
}

// Build fits the vocabulary and idf weights on docs and vectorizes every document.
func Build(docs []Document) (*Index, error) {
	vocabulary := make(map[string]int)
	df := make([]int, 0)

	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		terms := Tokenize(doc.Text)
		tokenized[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}

			idx, ok := vocabulary[term]
			if !ok {
				idx = len(df)
				vocabulary[term] = idx
				df = append(df, 0)
			}
			df[idx]++
		}
	}

	if len(vocabulary) == 0 {
		return nil, ErrEmptyCorpus
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for i, count := range df {
		idf[i] = math.Log((1+n)/(1+float64(count))) + 1
	}

	index := &Index{
		docs:       append([]Document(nil), docs...),
		vocabulary: vocabulary,
		idf:        idf,
		vectors:    make([]vector, len(docs)),
	}

	for i, terms := range tokenized {
		index.vectors[i] = index.vectorize(terms)
	}

	return index, nil
}

// Tokenize lowercases text and splits it into terms.
func Tokenize(text string) []string {
	return termPattern.FindAllString(strings.ToLower(text), -1)
}

// Len returns the number of indexed documents.
func (i *Index) Len() int {
	return len(i.vectors)
}

// VocabularySize returns the number of distinct terms seen at build time.
func (i *Index) VocabularySize() int {
	return len(i.vocabulary)
}

// Search returns up to topK documents with a positive similarity to text,
// best first. Equal scores keep corpus order.
func (i *Index) Search(text string, topK int) []Match {
	if topK <= 0 {
		return nil
	}

	query := i.vectorize(Tokenize(text))

	matches := make([]Match, 0, len(i.docs))
	for pos, doc := range i.docs {
		matches = append(matches, Match{
			Label:    doc.Label,
			Text:     doc.Text,
			Position: pos,
			Score:    cosine(query, i.vectors[pos]),
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if topK > len(matches) {
		topK = len(matches)
	}

	result := make([]Match, 0, topK)
	for _, m := range matches[:topK] {
		if m.Score <= 0 {
			break
		}
		result = append(result, m)
	}

	return result
}

// Query returns the best matching document. It reports false when no document
// shares a term with text.
func (i *Index) Query(text string) (Match, bool) {
	matches := i.Search(text, 1)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

func (i *Index) vectorize(terms []string) vector {
	counts := make(map[int]float64)
	for _, term := range terms {
		if idx, ok := i.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	v := make(vector, 0, len(counts))
	for idx, tf := range counts {
		v = append(v, entry{dim: idx, weight: tf * i.idf[idx]})
	}
	// Sorted dimensions keep every sum in a fixed order.
	sort.Slice(v, func(a, b int) bool { return v[a].dim < v[b].dim })

	var norm float64
	for _, e := range v {
		norm += e.weight * e.weight
	}

	if norm == 0 {
		return v
	}

	norm = math.Sqrt(norm)
	for k := range v {
		v[k].weight /= norm
	}

	return v
}

// cosine expects L2-normalized vectors. A zero vector scores 0.
func cosine(a, b vector) float64 {
	var dot float64
	for x, y := 0, 0; x < len(a) && y < len(b); {
		switch {
		case a[x].dim == b[y].dim:
			dot += a[x].weight * b[y].weight
			x++
			y++
		case a[x].dim < b[y].dim:
			x++
		default:
			y++
		}
	}

	// Rounding can push identical vectors slightly above 1.
	return math.Min(dot, 1)
}
