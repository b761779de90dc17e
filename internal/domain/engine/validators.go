package engine

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cchk/cchk/internal/domain"
)

// conventionalPrefixRe strips the "type(scope)!: " prefix from a subject,
// leaving the description.
var conventionalPrefixRe = regexp.MustCompile(`^\w+(\([^)]*\))?!?:\s*`)

// typeTokenRe extracts the leading type token of a conventional subject.
var typeTokenRe = regexp.MustCompile(`^(\w+)(\([^)]*\))?!?:`)

// signoffTrailerRe captures name and email of a DCO trailer line.
var signoffTrailerRe = regexp.MustCompile(`Signed-off-by:\s*(.+?)\s*<(.+?)>`)

func checkConventionalFormat(rule domain.Rule, ctx domain.Context) (bool, string) {
	if subjectExempt(ctx.Subject, rule.Exempt) {
		return true, ""
	}
	msg := ctx.Message
	if msg == "" {
		msg = ctx.Subject
	}
	if rule.Pattern.MatchString(msg) {
		return true, ""
	}
	return false, ctx.Subject
}

func checkTypeAllowList(rule domain.Rule, ctx domain.Context) (bool, string) {
	if subjectExempt(ctx.Subject, rule.Exempt) {
		return true, ""
	}
	m := typeTokenRe.FindStringSubmatch(ctx.Subject)
	if m == nil {
		// No leading type token at all; the format rule reports that.
		return true, ""
	}
	typ := m[1]
	for _, allowed := range rule.Allowed {
		if typ == allowed {
			return true, ""
		}
	}
	return false, typ
}

func checkSubjectMaxLength(rule domain.Rule, ctx domain.Context) (bool, string) {
	if mergeSubject(ctx.Subject) {
		return true, ""
	}
	if len([]rune(ctx.Subject)) <= rule.Limit {
		return true, ""
	}
	return false, ctx.Subject
}

func checkSubjectMinLength(rule domain.Rule, ctx domain.Context) (bool, string) {
	if mergeSubject(ctx.Subject) {
		return true, ""
	}
	if ctx.Subject == "" {
		// Emptiness is the no_empty_commits rule's concern.
		return true, ""
	}
	if len([]rune(ctx.Subject)) >= rule.Limit {
		return true, ""
	}
	return false, ctx.Subject
}

func checkSubjectCapitalized(_ domain.Rule, ctx domain.Context) (bool, string) {
	if ctx.Subject == "" || mergeSubject(ctx.Subject) {
		return true, ""
	}
	desc := description(ctx.Subject)
	if desc == "" {
		return false, ctx.Subject
	}
	if unicode.IsUpper([]rune(desc)[0]) {
		return true, ""
	}
	return false, ctx.Subject
}

// checkSubjectImperative flags the first word of the description when it is
// a known non-imperative form (past tense, gerund, third person). The lookup
// list is a heuristic and inherently incomplete; irregular verbs outside the
// list pass.
func checkSubjectImperative(_ domain.Rule, ctx domain.Context) (bool, string) {
	if ctx.Subject == "" ||
		mergeSubject(ctx.Subject) ||
		strings.HasPrefix(ctx.Subject, "fixup!") {
		return true, ""
	}
	desc := description(ctx.Subject)
	first, _, _ := strings.Cut(desc, " ")
	if first == "" {
		return true, ""
	}
	if nonImperativeWords[strings.ToLower(first)] {
		return false, ctx.Subject
	}
	return true, ""
}

func checkRequireBody(_ domain.Rule, ctx domain.Context) (bool, string) {
	if strings.TrimSpace(ctx.Body) != "" {
		return true, ""
	}
	return false, ctx.Subject
}

func checkNoMergeCommits(_ domain.Rule, ctx domain.Context) (bool, string) {
	return prohibitPrefix(ctx.Subject, "merge")
}

func checkNoRevertCommits(_ domain.Rule, ctx domain.Context) (bool, string) {
	return prohibitPrefix(ctx.Subject, "revert")
}

func checkNoEmptyCommits(_ domain.Rule, ctx domain.Context) (bool, string) {
	if strings.TrimSpace(ctx.Subject) != "" {
		return true, ""
	}
	return false, "(empty)"
}

func checkNoFixupCommits(_ domain.Rule, ctx domain.Context) (bool, string) {
	if strings.HasPrefix(ctx.Subject, "fixup!") {
		return false, ctx.Subject
	}
	return true, ""
}

func checkNoWipCommits(_ domain.Rule, ctx domain.Context) (bool, string) {
	return prohibitPrefix(ctx.Subject, "wip")
}

func checkSignoff(rule domain.Rule, ctx domain.Context) (bool, string) {
	msg := ctx.Message
	if msg == "" {
		msg = ctx.Subject
	}
	if !rule.Pattern.MatchString(msg) {
		return false, ctx.Subject
	}
	if rule.RequiredName == "" && rule.RequiredEmail == "" {
		return true, ""
	}
	// A trailer exists; at least one must carry the required identity.
	for _, m := range signoffTrailerRe.FindAllStringSubmatch(msg, -1) {
		name, email := m[1], m[2]
		if rule.RequiredName != "" && name != rule.RequiredName {
			continue
		}
		if rule.RequiredEmail != "" && email != rule.RequiredEmail {
			continue
		}
		return true, ""
	}
	return false, ctx.Subject
}

func checkAuthorName(rule domain.Rule, ctx domain.Context) (bool, string) {
	return matchOrSkip(rule, ctx.AuthorName)
}

func checkAuthorEmail(rule domain.Rule, ctx domain.Context) (bool, string) {
	return matchOrSkip(rule, ctx.AuthorEmail)
}

func checkBranchFormat(rule domain.Rule, ctx domain.Context) (bool, string) {
	if ctx.Branch == "" || branchExempt(ctx.Branch, rule.Exempt) {
		return true, ""
	}
	if rule.Pattern.MatchString(ctx.Branch) {
		return true, ""
	}
	return false, ctx.Branch
}

func checkBranchTypeAllowList(rule domain.Rule, ctx domain.Context) (bool, string) {
	if ctx.Branch == "" || branchExempt(ctx.Branch, rule.Exempt) {
		return true, ""
	}
	typ, _, found := strings.Cut(ctx.Branch, "/")
	if !found {
		// No type segment; the format rule reports that.
		return true, ""
	}
	for _, allowed := range rule.Allowed {
		if typ == allowed {
			return true, ""
		}
	}
	return false, typ
}

func checkRebaseTarget(_ domain.Rule, ctx domain.Context) (bool, string) {
	if ctx.RebasedOnTarget == nil || *ctx.RebasedOnTarget {
		return true, ""
	}
	return false, ctx.Branch
}

// description returns the subject with any conventional "type(scope)!: "
// prefix stripped.
func description(subject string) string {
	return strings.TrimSpace(conventionalPrefixRe.ReplaceAllString(subject, ""))
}

// mergeSubject reports whether the subject looks like a merge commit's,
// regardless of case.
func mergeSubject(subject string) bool {
	return len(subject) >= 5 && strings.EqualFold(subject[:5], "merge")
}

// subjectExempt reports whether the subject begins with one of the
// short-circuit prefixes at a word boundary, so "wipe the tables" is not
// exempted by the WIP prefix.
func subjectExempt(subject string, prefixes []string) bool {
	for _, p := range prefixes {
		if !strings.HasPrefix(subject, p) {
			continue
		}
		rest := subject[len(p):]
		if rest == "" || rest[0] == ' ' || rest[0] == ':' || rest[0] == '!' || rest[0] == '"' {
			return true
		}
	}
	return false
}

// branchExempt matches literal branch names; a trailing * matches any suffix.
func branchExempt(branch string, literals []string) bool {
	for _, l := range literals {
		if prefix, ok := strings.CutSuffix(l, "*"); ok {
			if strings.HasPrefix(branch, prefix) {
				return true
			}
		} else if branch == l {
			return true
		}
	}
	return false
}

// prohibitPrefix fails when the subject starts with the given word,
// case-insensitively, at a word boundary.
func prohibitPrefix(subject, word string) (bool, string) {
	lower := strings.ToLower(subject)
	if !strings.HasPrefix(lower, word) {
		return true, ""
	}
	rest := lower[len(word):]
	if rest == "" || rest[0] == ' ' || rest[0] == ':' || rest[0] == '!' || rest[0] == '"' {
		return false, subject
	}
	return true, ""
}

// matchOrSkip matches value against the rule pattern, passing when the value
// is absent (nothing to judge).
func matchOrSkip(rule domain.Rule, value string) (bool, string) {
	if value == "" {
		return true, ""
	}
	if rule.Pattern.MatchString(value) {
		return true, ""
	}
	return false, value
}
