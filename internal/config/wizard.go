package config

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	Environment  Environment
	KeyPairName  string
	DomainName   string
	HostedZoneID string
	OfficeCIDR   string
}

// RunWizard walks the user through an overrides file interactively.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		Environment: EnvDev,
	}

	form := huh.NewForm(
		// Target environment
		huh.NewGroup(
			huh.NewSelect[Environment]().
				Title("Environment").
				Description("Which environment will this deployment target?").
				Options(
					huh.NewOption("Development (t3.small, no backups)", EnvDev),
					huh.NewOption("Staging (t3.medium, monitored)", EnvStaging),
					huh.NewOption("Production (t3.large, monitored + backups)", EnvProduction),
				).
				Value(&result.Environment),
		),

		// SSH access
		huh.NewGroup(
			huh.NewInput().
				Title("EC2 key pair name").
				Description("An existing key pair in your AWS account. Required for deployment.").
				Placeholder("mailstead-ops").
				Value(&result.KeyPairName).
				Validate(validateKeyPairName),

			huh.NewInput().
				Title("Office CIDR (optional)").
				Description("Restrict SSH to this source range. Leave empty for 0.0.0.0/0.").
				Placeholder("203.0.113.0/24").
				Value(&result.OfficeCIDR).
				Validate(validateCIDR),
		),

		// DNS
		huh.NewGroup(
			huh.NewInput().
				Title("Mail domain (optional)").
				Description("The domain mail is served under. Leave empty to skip DNS.").
				Placeholder("mail.example.com").
				Value(&result.DomainName).
				Validate(validateDomain),

			huh.NewInput().
				Title("Route53 hosted zone ID (optional)").
				Description("The zone holding the domain. DNS records need both values.").
				Placeholder("Z0123456789ABCDEFGHIJ").
				Value(&result.HostedZoneID),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToOverrides converts the wizard result to an Overrides file.
func (r *WizardResult) ToOverrides() Overrides {
	o := Overrides{
		KeyPairName:  strings.TrimSpace(r.KeyPairName),
		DomainName:   strings.TrimSpace(r.DomainName),
		HostedZoneID: strings.TrimSpace(r.HostedZoneID),
	}
	if cidr := strings.TrimSpace(r.OfficeCIDR); cidr != "" {
		o.SSHCidrs = []string{cidr}
	}
	return o
}

func validateKeyPairName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("key pair name is required")
	}
	return nil
}

func validateCIDR(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, _, err := net.ParseCIDR(s); err != nil {
		return fmt.Errorf("not a valid CIDR (expected e.g. 203.0.113.0/24)")
	}
	return nil
}

func validateDomain(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Contains(s, " ") || !strings.Contains(s, ".") {
		return fmt.Errorf("not a valid domain name")
	}
	return nil
}
