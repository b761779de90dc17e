package engine

// nonImperativeWords is the fixed lookup of first words that indicate a
// non-imperative subject: past-tense and gerund forms of verbs commonly seen
// in commit messages, plus third-person forms. The list is a heuristic and
// makes no attempt at real morphology; words outside it are accepted.
var nonImperativeWords = map[string]bool{
	// past tense
	"added": true, "adjusted": true, "allowed": true, "applied": true,
	"bumped": true, "changed": true, "checked": true, "cleaned": true,
	"converted": true, "corrected": true, "created": true, "deleted": true,
	"deprecated": true, "disabled": true, "documented": true, "dropped": true,
	"enabled": true, "enhanced": true, "extended": true, "fixed": true,
	"implemented": true, "improved": true, "increased": true, "introduced": true,
	"merged": true, "migrated": true, "moved": true, "optimized": true,
	"patched": true, "refactored": true, "removed": true, "renamed": true,
	"replaced": true, "resolved": true, "reverted": true, "reworked": true,
	"simplified": true, "solved": true, "supported": true,
	"tested": true, "tweaked": true, "updated": true, "upgraded": true,
	"used": true,

	// gerund
	"adding": true, "adjusting": true, "allowing": true, "applying": true,
	"bumping": true, "changing": true, "checking": true, "cleaning": true,
	"converting": true, "correcting": true, "creating": true, "deleting": true,
	"disabling": true, "documenting": true, "dropping": true, "enabling": true,
	"enhancing": true, "extending": true, "fixing": true, "implementing": true,
	"improving": true, "increasing": true, "introducing": true, "merging": true,
	"migrating": true, "moving": true, "optimizing": true, "patching": true,
	"refactoring": true, "removing": true, "renaming": true, "replacing": true,
	"resolving": true, "reverting": true, "reworking": true, "simplifying": true,
	"solving": true, "supporting": true, "testing": true, "tweaking": true,
	"updating": true, "upgrading": true, "using": true,

	// third person
	"adds": true, "allows": true, "bumps": true, "changes": true,
	"checks": true, "creates": true, "deletes": true, "disables": true,
	"enables": true, "fixes": true, "implements": true, "improves": true,
	"introduces": true, "merges": true, "moves": true, "removes": true,
	"renames": true, "replaces": true, "resolves": true, "reverts": true,
	"simplifies": true, "supports": true, "updates": true, "upgrades": true,
	"uses": true,
}
