package types

import (
	"path/filepath"
	"strings"
)

// Fixed naming rules. These are not user-configurable: the prohibited names
// mirror the CLI's own subcommands and the sentinel follows the skill.md
// convention.
const (
	// DefaultExtension is appended to entry paths that carry no extension
	DefaultExtension = ".md"

	// SkillSentinel is the only file a collapsible skill folder may contain
	SkillSentinel = "SKILL.md"

	// MergeSeparator sits between new and old content after a prepend-merge
	MergeSeparator = "\n\n--- MERGED ---\n\n"
)

// DefaultEligibleExtensions lists the extensions considered for folder imports
var DefaultEligibleExtensions = []string{".md", ".txt"}

// DefaultProhibitedNames lists base names that can never be saved as entries
var DefaultProhibitedNames = []string{"list", "rm", "add", "store", "save"}

// Rules carries the process-wide naming configuration into core components.
type Rules struct {
	DefaultExtension   string
	EligibleExtensions []string
	ProhibitedNames    []string
	SkillSentinel      string
	MergeSeparator     string
}

// DefaultRules returns the rules promptpaste ships with
func DefaultRules() Rules {
	return Rules{
		DefaultExtension:   DefaultExtension,
		EligibleExtensions: append([]string(nil), DefaultEligibleExtensions...),
		ProhibitedNames:    append([]string(nil), DefaultProhibitedNames...),
		SkillSentinel:      SkillSentinel,
		MergeSeparator:     MergeSeparator,
	}
}

// IsProhibited reports whether stem is a reserved entry base name
func (r Rules) IsProhibited(stem string) bool {
	for _, name := range r.ProhibitedNames {
		if stem == name {
			return true
		}
	}
	return false
}

// IsEligible reports whether a file name carries an importable extension.
// The comparison is case-insensitive.
func (r Rules) IsEligible(name string) bool {
	ext := strings.ToLower(Ext(name))
	if ext == "" {
		return false
	}
	for _, allowed := range r.EligibleExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// Ext returns the extension of the final path element. Unlike filepath.Ext,
// dotfiles such as ".bashrc" and names ending in a bare dot have no extension.
func Ext(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return ""
	}
	return ext
}

// Stem returns the final path element without its extension
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, Ext(base))
}
