// Package normalize reconciles the register's inconsistently entered
// categorical fields into canonical form. The rules run in a fixed order:
// cancellation filter, area collapse, project trim, then the project
// classification chain.
package normalize

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

// RuleTag identifies a project classification rule.
type RuleTag string

const (
	TagNaLikeHeuristic RuleTag = "na_like_heuristic"
	TagPlaceholder     RuleTag = "placeholder"
	TagDegenerate      RuleTag = "degenerate"
	TagSelfReferential RuleTag = "self_referential"
)

// naLike matches an n followed, anywhere later, by an a, either case.
// Combined with the 4-character cap this is the historical "no project"
// heuristic. A genuine short code containing n before a (e.g. "NACA") is a
// known false positive; the behavior is kept as-is because downstream counts
// have always been computed against it.
var naLike = regexp.MustCompile(`(?i)n.*a`)

// placeholders are exact, case-sensitive whole-field matches. "tba" in
// lowercase is not a placeholder and passes through.
var placeholders = map[string]bool{
	"TBC":      true,
	"various":  true,
	"TBA":      true,
	"Multiple": true,
}

// degenerate whole-field patterns: all whitespace, all zeros, all dashes,
// or a single non-alphanumeric character.
var degenerate = []*regexp.Regexp{
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`^0+$`),
	regexp.MustCompile(`^-+$`),
	regexp.MustCompile(`^[^0-9a-zA-Z]$`),
}

// projectRule is one predicate in the classification chain. A matching
// rewrite rule replaces the project with the N/A sentinel; a matching drop
// rule removes the record. No match is the default path, never an error.
type projectRule struct {
	tag   RuleTag
	drop  bool
	match func(project, modNo string) bool
}

// projectRules in evaluation order. The rewrite rules are independent and
// all target the same sentinel, so a value matching several causes no
// conflict. The self-referential drop runs last and compares against the
// original un-split compound code.
var projectRules = []projectRule{
	{tag: TagNaLikeHeuristic, match: func(project, _ string) bool {
		return len(project) <= 4 && naLike.MatchString(project)
	}},
	{tag: TagPlaceholder, match: func(project, _ string) bool {
		return placeholders[project]
	}},
	{tag: TagDegenerate, match: func(project, _ string) bool {
		for _, re := range degenerate {
			if re.MatchString(project) {
				return true
			}
		}
		return false
	}},
	{tag: TagSelfReferential, drop: true, match: func(project, modNo string) bool {
		return project == modNo
	}},
}

// ClassifyProject reports the first rule matching a trimmed project value
// for a record with the given compound code, or false when no rule matches.
func ClassifyProject(project, modNo string) (RuleTag, bool) {
	for _, rule := range projectRules {
		if rule.match(project, modNo) {
			return rule.tag, true
		}
	}
	return "", false
}

// Apply runs the full rule chain and returns the normalized record set.
// Cancelled records and self-referential project entries are removed; every
// other record survives, rewritten or verbatim. The input slice is left
// untouched.
func Apply(records []model.Record) []model.Record {
	out := make([]model.Record, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if rec.Status == model.StatusCancelled {
			continue
		}

		if strings.HasPrefix(rec.Area, model.AreaServices) {
			rec.Area = model.AreaServices
		}

		rec.Project = strings.TrimSpace(rec.Project)

		remove := false
		for _, rule := range projectRules {
			if !rule.match(rec.Project, rec.ModNo) {
				continue
			}
			if rule.drop {
				remove = true
				break
			}
			rec.Project = model.NA
		}
		if remove {
			dropped++
			continue
		}

		out = append(out, rec)
	}

	if dropped > 0 {
		zap.L().Info("normalize: dropped self-referential project entries",
			zap.Int("records", dropped))
	}
	return out
}
