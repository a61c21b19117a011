package responder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spigell/career-assistant/internal/documents"
	"github.com/spigell/career-assistant/internal/faq"
	"github.com/spigell/career-assistant/internal/retrieval"
)

// Rule names, in evaluation order.
const (
	RuleGreeting       = "greeting"
	RuleAcknowledgment = "acknowledgment"
	RuleFAQ            = "faq"
	RuleBio            = "bio"
	RuleProject        = "project"
	RuleGoal           = "goal"
	RuleLinkedIn       = "linkedin"
	RuleSkill          = "skill"
	RuleRetrieval      = "retrieval"
	RuleRefusal        = "refusal"
)

// Rule kinds.
const (
	KindExact     = "exact"
	KindFuzzy     = "fuzzy"
	KindKeyword   = "keyword"
	KindRetrieval = "retrieval"
	KindFallback  = "fallback"
)

// Rule is one step of the routing chain. Apply receives the lowercased,
// trimmed message and reports whether the rule produced a reply.
type Rule interface {
	Name() string
	Kind() string
	Disable(reason string)
	IsEnabled() bool

	Apply(query string) (Reply, bool)
}

// Status represents runtime information about a rule.
type Status struct {
	Name    string            `json:"name"`
	Kind    string            `json:"kind"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type statusProvider interface {
	Status() Status
}

// toggle carries the enabled state shared by all rules.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

// Describe returns status entries for the provided rules.
func Describe(rules []Rule) []Status {
	statuses := make([]Status, 0, len(rules))
	for _, rule := range rules {
		if reporter, ok := rule.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    rule.Name(),
			Kind:    rule.Kind(),
			Enabled: rule.IsEnabled(),
		})
	}
	return statuses
}

// DisableByName marks the named rule as disabled while keeping it in the chain.
func DisableByName(rules []Rule, name, reason string) error {
	for _, rule := range rules {
		if rule.Name() != name {
			continue
		}
		if rule.Kind() == KindFallback {
			return fmt.Errorf("%s: %w", name, ErrFallbackRule)
		}
		rule.Disable(reason)
		return nil
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownRule)
}

type exactRule struct {
	toggle
	name    string
	phrases []string
	text    string
}

// NewExact creates a rule answering text when the query equals one of phrases.
func NewExact(name string, phrases []string, text string) Rule {
	return &exactRule{name: name, phrases: slices.Clone(phrases), text: text}
}

func (r *exactRule) Name() string { return r.name }

func (r *exactRule) Kind() string { return KindExact }

func (r *exactRule) Apply(query string) (Reply, bool) {
	if !slices.Contains(r.phrases, query) {
		return Reply{}, false
	}
	return Reply{Text: r.text, Rule: r.name}, true
}

func (r *exactRule) Status() Status {
	return Status{
		Name:    r.name,
		Kind:    KindExact,
		Enabled: r.IsEnabled(),
		Reason:  r.reason,
		Details: map[string]string{"phrases": strings.Join(r.phrases, ",")},
	}
}

type faqRule struct {
	toggle
	matcher *faq.Matcher
}

// NewFAQ creates the recruiter question rule.
func NewFAQ(matcher *faq.Matcher) Rule {
	return &faqRule{matcher: matcher}
}

func (r *faqRule) Name() string { return RuleFAQ }

func (r *faqRule) Kind() string { return KindFuzzy }

func (r *faqRule) Apply(query string) (Reply, bool) {
	entry, ratio, ok := r.matcher.MatchEntry(query)
	if !ok {
		return Reply{}, false
	}
	return Reply{Text: entry.Answer, Rule: RuleFAQ, Question: entry.Name, Score: ratio}, true
}

func (r *faqRule) Status() Status {
	return Status{
		Name:    RuleFAQ,
		Kind:    KindFuzzy,
		Enabled: r.IsEnabled(),
		Reason:  r.reason,
		Details: map[string]string{
			"threshold": strconv.FormatFloat(r.matcher.Threshold(), 'f', 2, 64),
			"questions": strconv.Itoa(len(r.matcher.Entries())),
		},
	}
}

type keywordRule struct {
	toggle
	name    string
	keyword string
	section documents.Section
	text    string
}

// NewKeyword creates a rule answering text when the query contains keyword.
// Substring matching is intended: "biology" still mentions "bio".
func NewKeyword(name, keyword string, section documents.Section, text string) Rule {
	return &keywordRule{name: name, keyword: keyword, section: section, text: text}
}

func (r *keywordRule) Name() string { return r.name }

func (r *keywordRule) Kind() string { return KindKeyword }

func (r *keywordRule) Apply(query string) (Reply, bool) {
	if !strings.Contains(query, r.keyword) {
		return Reply{}, false
	}
	return Reply{Text: r.text, Rule: r.name, Section: r.section}, true
}

func (r *keywordRule) Status() Status {
	details := map[string]string{"keyword": r.keyword}
	if r.section != "" {
		details["section"] = string(r.section)
	}
	return Status{Name: r.name, Kind: KindKeyword, Enabled: r.IsEnabled(), Reason: r.reason, Details: details}
}

type retrievalRule struct {
	toggle
	index *retrieval.Index
}

// NewRetrieval creates the rule answering with the best matching section.
func NewRetrieval(index *retrieval.Index) Rule {
	return &retrievalRule{index: index}
}

func (r *retrievalRule) Name() string { return RuleRetrieval }

func (r *retrievalRule) Kind() string { return KindRetrieval }

func (r *retrievalRule) Apply(query string) (Reply, bool) {
	match, ok := r.index.Query(query)
	if !ok {
		return Reply{}, false
	}
	return Reply{
		Text:    RetrievedReply(match.Label, match.Text),
		Rule:    RuleRetrieval,
		Section: documents.Section(match.Label),
		Score:   match.Score,
	}, true
}

func (r *retrievalRule) Status() Status {
	return Status{
		Name:    RuleRetrieval,
		Kind:    KindRetrieval,
		Enabled: r.IsEnabled(),
		Reason:  r.reason,
		Details: map[string]string{
			"documents":  strconv.Itoa(r.index.Len()),
			"vocabulary": strconv.Itoa(r.index.VocabularySize()),
		},
	}
}

// refusalRule always answers and cannot be disabled.
type refusalRule struct{}

func (refusalRule) Name() string { return RuleRefusal }

func (refusalRule) Kind() string { return KindFallback }

func (refusalRule) Disable(string) {}

func (refusalRule) IsEnabled() bool { return true }

func (refusalRule) Apply(string) (Reply, bool) {
	return Reply{Text: RefusalReply, Rule: RuleRefusal}, true
}
