// Package responder turns a free-text message into exactly one reply by
// walking a fixed chain of rules: exact greetings and acknowledgments,
// recruiter FAQ, section keywords, TF-IDF retrieval and finally a refusal.
package responder

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/documents"
	"github.com/spigell/career-assistant/internal/faq"
	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/retrieval"
)

var (
	ErrNoStore      = errors.New("document store is required")
	ErrUnknownRule  = errors.New("unknown rule")
	ErrFallbackRule = errors.New("fallback rule cannot be disabled")
)

// Message is one turn of the conversation history. History is accepted for
// compatibility with chat front-ends but never influences the reply.
type Message struct {
	Role    string `json:"role" validate:"omitempty,oneof=user assistant system"`
	Content string `json:"content"`
}

// Reply is the outcome of routing a message.
type Reply struct {
	Text string
	// Rule is the name of the rule that produced Text.
	Rule    string
	Section documents.Section
	// Question is the matched FAQ entry name.
	Question string
	// Score is the FAQ ratio or retrieval similarity; zero for other rules.
	Score float64
}

// Config tunes the rule chain.
type Config struct {
	// FAQThreshold overrides faq.DefaultThreshold when positive.
	FAQThreshold float64
	// Disabled lists rule names to skip. The refusal cannot be disabled.
	Disabled []string
	// MaxLogLength bounds message previews in debug logs.
	MaxLogLength int
}

// Assistant holds everything needed to answer and is immutable after New.
// It is safe for concurrent use.
type Assistant struct {
	store        *documents.Store
	index        *retrieval.Index
	rules        []Rule
	logger       *zap.Logger
	maxLogLength int
}

// New indexes the normalized documents of store and assembles the rule chain.
func New(store *documents.Store, cfg Config, log *zap.Logger) (*Assistant, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	docs := store.Documents()
	corpus := make([]retrieval.Document, 0, len(docs))
	for _, doc := range docs {
		corpus = append(corpus, retrieval.Document{Label: string(doc.Section), Text: doc.Normalized})
	}

	index, err := retrieval.Build(corpus)
	if err != nil {
		return nil, fmt.Errorf("building retrieval index: %w", err)
	}

	rules := []Rule{
		NewExact(RuleGreeting, greetings, GreetingReply),
		NewExact(RuleAcknowledgment, acknowledgments, AcknowledgmentReply),
		NewFAQ(faq.NewMatcher(faq.DefaultEntries(), cfg.FAQThreshold)),
	}
	rules = append(rules, sectionRules(store)...)
	rules = append(rules,
		NewKeyword(RuleSkill, "skill", "", SkillsReply),
		NewRetrieval(index),
		refusalRule{},
	)

	for _, name := range cfg.Disabled {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if err := DisableByName(rules, name, "disabled in configuration"); err != nil {
			return nil, err
		}
	}

	maxLogLength := cfg.MaxLogLength
	if maxLogLength <= 0 {
		maxLogLength = logger.DefaultMaxLength
	}

	return &Assistant{
		store:        store,
		index:        index,
		rules:        rules,
		logger:       logger.WithFields(log),
		maxLogLength: maxLogLength,
	}, nil
}

func sectionRules(store *documents.Store) []Rule {
	keywords := []struct {
		name    string
		keyword string
		section documents.Section
	}{
		{name: RuleBio, keyword: "bio", section: documents.SectionBio},
		{name: RuleProject, keyword: "project", section: documents.SectionProjects},
		{name: RuleGoal, keyword: "goal", section: documents.SectionGoals},
		{name: RuleLinkedIn, keyword: "linkedin", section: documents.SectionLinkedIn},
	}

	rules := make([]Rule, 0, len(keywords))
	for _, kw := range keywords {
		doc, ok := store.Get(kw.section)
		rule := NewKeyword(kw.name, kw.keyword, kw.section, doc.Raw)
		if !ok {
			rule.Disable("section is not configured")
		}
		rules = append(rules, rule)
	}
	return rules
}

// WithLogger returns a copy of the assistant that logs decisions to log.
func (a *Assistant) WithLogger(log *zap.Logger) *Assistant {
	clone := *a
	clone.logger = logger.WithFields(log)
	return &clone
}

// Resolve routes message through the rule chain. It always returns a reply.
func (a *Assistant) Resolve(message string) Reply {
	query := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range a.rules {
		if !rule.IsEnabled() {
			continue
		}

		reply, ok := rule.Apply(query)
		if !ok {
			continue
		}

		fields := logger.ReplyFields(reply.Rule, string(reply.Section))
		fields = append(fields,
			logger.MessageField(message, a.maxLogLength),
			zap.Float64("score", reply.Score),
		)
		a.logger.Debug("reply resolved", fields...)

		return reply
	}

	// Unreachable while the refusal closes the chain.
	return Reply{Text: RefusalReply, Rule: RuleRefusal}
}

// Respond is the conversational entry point. History is ignored.
func (a *Assistant) Respond(message string, _ []Message) string {
	return a.Resolve(message).Text
}

// Rules describes the chain in evaluation order.
func (a *Assistant) Rules() []Status {
	return Describe(a.rules)
}

// Store returns the documents the assistant answers from.
func (a *Assistant) Store() *documents.Store {
	return a.store
}
