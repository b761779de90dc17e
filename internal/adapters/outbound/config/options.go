package config

import (
	"strings"

	"github.com/fatih/camelcase"
)

// ValueKind identifies the type an option's value parses as. The CLI uses
// it to register the matching flag type for each override.
type ValueKind int

const (
	BoolValue ValueKind = iota
	IntValue
	StringValue
	ListValue
)

// option describes one recognized configuration option: its section, its
// koanf key, its type, and the environment variable that overrides it.
type option struct {
	section string
	kind    ValueKind
	key     string // koanf path, e.g. "commit.subject_max_length"
	envName string // e.g. CCHK_SUBJECT_MAX_LENGTH
}

// opt derives the koanf key and env var name from the option's field name,
// so the three spellings (TOML key, env var, flag) can never drift apart.
func opt(section, field string, kind ValueKind) option {
	words := camelcase.Split(field)
	return option{
		section: section,
		kind:    kind,
		key:     section + "." + strings.ToLower(strings.Join(words, "_")),
		envName: envPrefix + strings.ToUpper(strings.Join(words, "_")),
	}
}

// optEnv is opt with an explicit env var name, for branch options whose
// derived name would collide with a commit option.
func optEnv(section, field string, kind ValueKind, envName string) option {
	o := opt(section, field, kind)
	o.envName = envName
	return o
}

const envPrefix = "CCHK_"

// options enumerates every recognized option. The resolver is total over
// this list: each entry has a built-in default, a TOML key, an env var, and
// (on the relevant subcommand) a CLI flag.
var options = []option{
	opt("commit", "ConventionalCommits", BoolValue),
	opt("commit", "SubjectCapitalized", BoolValue),
	opt("commit", "SubjectImperative", BoolValue),
	opt("commit", "SubjectMaxLength", IntValue),
	opt("commit", "SubjectMinLength", IntValue),
	opt("commit", "AllowCommitTypes", ListValue),
	opt("commit", "AllowMergeCommits", BoolValue),
	opt("commit", "AllowRevertCommits", BoolValue),
	opt("commit", "AllowEmptyCommits", BoolValue),
	opt("commit", "AllowFixupCommits", BoolValue),
	opt("commit", "AllowWipCommits", BoolValue),
	opt("commit", "RequireBody", BoolValue),
	opt("commit", "RequireSignedOffBy", BoolValue),
	opt("commit", "RequiredSignoffName", StringValue),
	opt("commit", "RequiredSignoffEmail", StringValue),
	opt("commit", "IgnoreAuthors", ListValue),
	opt("branch", "ConventionalBranch", BoolValue),
	opt("branch", "AllowBranchTypes", ListValue),
	opt("branch", "AllowBranchNames", ListValue),
	opt("branch", "RequireRebaseTarget", StringValue),
	optEnv("branch", "IgnoreAuthors", ListValue, "CCHK_BRANCH_IGNORE_AUTHORS"),
}

// Option is the exported view of one recognized option: its koanf path,
// the CLI flag that overrides it, and its value type.
type Option struct {
	Key  string
	Flag string
	Kind ValueKind
}

// SectionOptions returns the options of a section ("commit" or "branch")
// for CLI flag registration. Flag names are the kebab-case spelling of the
// key leaf, e.g. commit.subject_max_length becomes --subject-max-length.
func SectionOptions(section string) []Option {
	var out []Option
	for _, o := range options {
		if o.section != section {
			continue
		}
		leaf := o.key[strings.IndexByte(o.key, '.')+1:]
		out = append(out, Option{
			Key:  o.key,
			Flag: strings.ReplaceAll(leaf, "_", "-"),
			Kind: o.kind,
		})
	}
	return out
}

// envToKey maps recognized env var names to koanf paths. Unknown CCHK_*
// variables are ignored by the env provider.
var envToKey = func() map[string]string {
	m := make(map[string]string, len(options))
	for _, o := range options {
		m[o.envName] = o.key
	}
	return m
}()
