package documents

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Section names one of the fixed portfolio documents.
type Section string

const (
	SectionBio      Section = "Bio"
	SectionProjects Section = "Projects"
	SectionGoals    Section = "Goals"
	SectionLinkedIn Section = "LinkedIn"
)

// Sections lists every section in corpus order.
var Sections = []Section{SectionBio, SectionProjects, SectionGoals, SectionLinkedIn}

// Source describes where the text of a section is read from.
type Source struct {
	Section Section
	// Path is read once at startup. A missing file is not an error.
	Path string
}

// Document is a loaded section. It is never modified after NewStore returns.
type Document struct {
	Section    Section
	Path       string
	Raw        string
	Normalized string
	// Missing is set when Raw holds the placeholder instead of file content.
	Missing bool
}

// Store holds the loaded documents in corpus order.
type Store struct {
	docs      []Document
	bySection map[Section]int
}

// DefaultSources returns the conventional file names for all sections.
func DefaultSources() []Source {
	return []Source{
		{Section: SectionBio, Path: "Bio.txt"},
		{Section: SectionProjects, Path: "Projects.txt"},
		{Section: SectionGoals, Path: "Career Goals.txt"},
		{Section: SectionLinkedIn, Path: "linkedin.txt"},
	}
}

// Placeholder is the text used in place of a file that cannot be read.
func Placeholder(path string) string {
	return fmt.Sprintf("%s not found.", path)
}

// Read returns the content of the file at path. When the file cannot be read,
// the placeholder text is returned together with the reason.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Placeholder(path), fmt.Errorf("reading %q: %w", path, err)
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// Load returns the content of the file at path or the placeholder text.
func Load(path string) string {
	text, _ := Read(path)
	return text
}

// NewStore reads every source once and keeps the result for the process lifetime.
// Sources sharing a section keep the first occurrence.
func NewStore(sources []Source, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		docs:      make([]Document, 0, len(sources)),
		bySection: make(map[Section]int, len(sources)),
	}

	for _, src := range sources {
		if _, ok := s.bySection[src.Section]; ok {
			logger.Warn("duplicate section source ignored",
				zap.String("section", string(src.Section)),
				zap.String("path", src.Path),
			)
			continue
		}

		raw, err := Read(src.Path)
		if err != nil {
			logger.Warn("section document is not available, using placeholder",
				zap.String("section", string(src.Section)),
				zap.String("path", src.Path),
				zap.Error(err),
			)
		}

		s.bySection[src.Section] = len(s.docs)
		s.docs = append(s.docs, Document{
			Section:    src.Section,
			Path:       src.Path,
			Raw:        raw,
			Normalized: Clean(raw),
			Missing:    err != nil,
		})

		logger.Debug("section document loaded",
			zap.String("section", string(src.Section)),
			zap.Int("raw_length", len(raw)),
			zap.Bool("missing", err != nil),
		)
	}

	return s
}

// Get returns the document for a section.
func (s *Store) Get(section Section) (Document, bool) {
	idx, ok := s.bySection[section]
	if !ok {
		return Document{}, false
	}
	return s.docs[idx], true
}

// Raw returns the unmodified text of a section, or "" for an unknown section.
func (s *Store) Raw(section Section) string {
	doc, _ := s.Get(section)
	return doc.Raw
}

// Normalized returns the cleaned text of a section, or "" for an unknown section.
func (s *Store) Normalized(section Section) string {
	doc, _ := s.Get(section)
	return doc.Normalized
}

// Documents returns a copy of all documents in corpus order.
func (s *Store) Documents() []Document {
	docs := make([]Document, len(s.docs))
	copy(docs, s.docs)
	return docs
}

func (s *Store) Len() int {
	return len(s.docs)
}
