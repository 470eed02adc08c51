// Package policy validates resolved configurations against
// operational-safety rules.
//
// Validation produces an ordered list of severity-tagged issues. In
// advisory mode every issue is informational. In strict mode specific
// warnings escalate to errors, and callers must abort composition when
// any error-severity issue is present.
package policy

import (
	"fmt"
	"strings"

	"github.com/mailstead/mailstead/internal/config"
)

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityWarning marks an advisory issue; composition proceeds.
	SeverityWarning Severity = "warning"
	// SeverityError marks a blocking issue; strict-mode callers must
	// not compose.
	SeverityError Severity = "error"
)

// Issue codes, stable across releases so callers can match on them.
const (
	CodeUnrestrictedSSH   = "unrestricted-ssh-cidr"
	CodePlaceholderValue  = "placeholder-value"
	CodeVolumeBelowMin    = "volume-below-minimum"
	CodeProductionBackups = "production-backups-disabled"
)

// Issue is one validation finding.
type Issue struct {
	Severity Severity
	Code     string
	Message  string
}

// String formats the issue the way the CLI prints it.
func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Code, i.Message)
}

// IsError returns true for error-severity issues.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

// ValidationError aggregates the full issue list of a failed strict
// validation. It is only returned when at least one error-severity
// issue exists.
type ValidationError struct {
	Issues []Issue
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

// Errors returns only the error-severity issues.
func (e *ValidationError) Errors() []Issue {
	var out []Issue
	for _, issue := range e.Issues {
		if issue.IsError() {
			out = append(out, issue)
		}
	}
	return out
}

// Validate inspects a resolved configuration and returns every issue
// found, in rule order. It never mutates cfg. An empty result means
// the configuration is clean.
//
// Strict mode does not change which rules fire, only how severe their
// findings are: the unrestricted-SSH rule escalates for production,
// the placeholder rule escalates for every environment, and the
// volume-size rule never escalates.
func Validate(cfg *config.Resolved, strict bool) []Issue {
	var issues []Issue

	issues = append(issues, checkSSHCidrs(cfg, strict)...)
	issues = append(issues, checkPlaceholders(cfg, strict)...)
	issues = append(issues, checkVolumeSize(cfg)...)
	issues = append(issues, checkProductionBackups(cfg)...)

	return issues
}

// ErrorIfBlocked returns a ValidationError when strict mode is on and
// the issue list contains at least one error. Callers use it as the
// gate between validation and composition.
func ErrorIfBlocked(issues []Issue, strict bool) error {
	if !strict {
		return nil
	}
	for _, issue := range issues {
		if issue.IsError() {
			return &ValidationError{Issues: issues}
		}
	}
	return nil
}

func checkSSHCidrs(cfg *config.Resolved, strict bool) []Issue {
	var issues []Issue
	for _, cidr := range cfg.AllowedSSHCidrs {
		if cidr != config.UnrestrictedCIDR {
			continue
		}
		severity := SeverityWarning
		if strict && cfg.Environment.IsProduction() {
			severity = SeverityError
		}
		issues = append(issues, Issue{
			Severity: severity,
			Code:     CodeUnrestrictedSSH,
			Message:  fmt.Sprintf("SSH port 22 is open to %s; narrow allowed_ssh_cidrs to trusted ranges", config.UnrestrictedCIDR),
		})
	}
	return issues
}

func checkPlaceholders(cfg *config.Resolved, strict bool) []Issue {
	severity := SeverityWarning
	if strict {
		severity = SeverityError
	}

	// Field order is fixed so the issue list is deterministic.
	fields := []struct {
		name  string
		value string
	}{
		{"key_pair_name", cfg.KeyPairName},
		{"domain_name", cfg.DomainName},
		{"hosted_zone_id", cfg.HostedZoneID},
	}

	var issues []Issue
	for _, f := range fields {
		if config.IsPlaceholder(f.value) {
			issues = append(issues, Issue{
				Severity: severity,
				Code:     CodePlaceholderValue,
				Message:  fmt.Sprintf("%s still holds the placeholder %q; replace it before deploying", f.name, f.value),
			})
		}
	}
	for _, cidr := range cfg.AllowedSSHCidrs {
		if config.IsPlaceholder(cidr) {
			issues = append(issues, Issue{
				Severity: severity,
				Code:     CodePlaceholderValue,
				Message:  fmt.Sprintf("allowed_ssh_cidrs still holds the placeholder %q; replace it before deploying", cidr),
			})
		}
	}
	return issues
}

func checkVolumeSize(cfg *config.Resolved) []Issue {
	if cfg.MinVolumeSizeGB <= 0 || cfg.VolumeSizeGB >= cfg.MinVolumeSizeGB {
		return nil
	}
	// Informational only; a small volume is a cost/retention tradeoff,
	// not a safety violation.
	return []Issue{{
		Severity: SeverityWarning,
		Code:     CodeVolumeBelowMin,
		Message:  fmt.Sprintf("volume size %dGB is below the %s minimum of %dGB", cfg.VolumeSizeGB, cfg.Environment, cfg.MinVolumeSizeGB),
	}}
}

func checkProductionBackups(cfg *config.Resolved) []Issue {
	if !cfg.Environment.IsProduction() || cfg.Backups {
		return nil
	}
	// Always an error regardless of mode: a production mail server
	// without backups is never a valid deployment.
	return []Issue{{
		Severity: SeverityError,
		Code:     CodeProductionBackups,
		Message:  "production requires backups to be enabled",
	}}
}
