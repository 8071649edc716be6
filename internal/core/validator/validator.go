// Package validator checks a visualizer configuration against its five field rules.
package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/nightconcept/depviz/internal/core/config"
	"github.com/nightconcept/depviz/internal/core/source"
)

// Rule identifies which field check produced a violation.
type Rule int

// Rules in the order they are evaluated and reported.
const (
	RulePackageName Rule = iota + 1
	RuleRepoLocation
	RuleMode
	RuleOutputFile
	RuleFilter
)

func (r Rule) String() string {
	switch r {
	case RulePackageName:
		return "package-name"
	case RuleRepoLocation:
		return "repo-url"
	case RuleMode:
		return "mode"
	case RuleOutputFile:
		return "output-file"
	case RuleFilter:
		return "filter"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Modes lists the accepted values for Configuration.Mode.
var Modes = []string{"local", "remote", "test"}

// OutputExtensions lists the accepted output file suffixes. Matching is case-sensitive.
var OutputExtensions = []string{".png", ".svg", ".jpg"}

var packageNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Violation is a single failed rule.
type Violation struct {
	Rule    Rule
	Message string
}

func (v Violation) Error() string {
	return v.Message
}

// Check runs every rule against cfg and returns one Violation per failing rule,
// in rule order. All rules are evaluated even after a failure.
func Check(cfg config.Configuration) []Violation {
	var violations []Violation
	add := func(r Rule, format string, args ...any) {
		violations = append(violations, Violation{Rule: r, Message: fmt.Sprintf(format, args...)})
	}

	if !packageNamePattern.MatchString(cfg.PackageName) {
		add(RulePackageName, "Invalid package name (allowed: letters, digits, '_', '-', '.')")
	}

	if source.IsRemote(cfg.RepoURL) {
		if _, err := source.ParseRepoLocation(cfg.RepoURL); err != nil {
			add(RuleRepoLocation, "Invalid repository URL")
		}
	} else {
		loc, _ := source.ParseRepoLocation(cfg.RepoURL)
		if !loc.Exists() {
			add(RuleRepoLocation, "File or directory '%s' does not exist", cfg.RepoURL)
		}
	}

	if !slices.Contains(Modes, cfg.Mode) {
		add(RuleMode, "Mode must be one of: %s", strings.Join(Modes, ", "))
	}

	if !hasAnySuffix(cfg.OutputFile, OutputExtensions) {
		add(RuleOutputFile, "Output file name must have extension .png, .svg or .jpg")
	}

	if cfg.HasFilter() && strings.TrimSpace(cfg.Filter) == "" {
		add(RuleFilter, "Empty filter substring is not allowed")
	}

	return violations
}

// Validate returns the message of every failing rule, in rule order.
// An empty result is the only success signal.
func Validate(cfg config.Configuration) []string {
	violations := Check(cfg)
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}
	return messages
}

// Err aggregates every violation into a single error rendered as a bulleted list,
// or returns nil when cfg is valid.
func Err(cfg config.Configuration) error {
	merr := &multierror.Error{ErrorFormat: BulletFormat}
	for _, v := range Check(cfg) {
		merr = multierror.Append(merr, v)
	}
	return merr.ErrorOrNil()
}

// BulletFormat renders errors one per line, each prefixed with " - ".
func BulletFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = " - " + err.Error()
	}
	return strings.Join(lines, "\n")
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
