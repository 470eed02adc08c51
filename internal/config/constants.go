package config

// Fixed product metadata used for tagging and resource naming.
const (
	// ProjectLabel is the product tag applied to every resource.
	ProjectLabel = "Mailstead"

	// ManagedByLabel identifies the provisioning tool in resource tags.
	ManagedByLabel = "mailstead"
)

// UnrestrictedCIDR is the anywhere sentinel. It is the compiled-in
// SSH default and always draws at least a validation warning.
const UnrestrictedCIDR = "0.0.0.0/0"

// Placeholder sentinels. These ship in example configuration so a
// checkout resolves end to end, but they must be replaced before a
// real deployment; the validator flags any field still holding one.
const (
	PlaceholderOfficeCIDR = "YOUR.OFFICE.IP.HERE/32"
	PlaceholderKeyPair    = "your-key-pair-name"
)

// placeholderDomains are the policy-default domains substituted when
// staging or production resolves with no domain from any source. A
// deliberate fallback, not an error: it keeps resolution total while
// remaining visibly fake (and validator-flagged) until replaced.
var placeholderDomains = map[Environment]string{
	EnvStaging:    "staging-mail.example.com",
	EnvProduction: "mail.example.com",
}

// IsPlaceholder reports whether a value is one of the shipped
// placeholder sentinels, including a policy-default domain.
func IsPlaceholder(value string) bool {
	switch value {
	case PlaceholderOfficeCIDR, PlaceholderKeyPair:
		return true
	}
	for _, d := range placeholderDomains {
		if value == d {
			return true
		}
	}
	return false
}

// Process environment variable names read by Resolve.
const (
	EnvVarEnvironment  = "MAILSTEAD_ENV"
	EnvVarKeyPair      = "MAILSTEAD_KEY_PAIR"
	EnvVarDomain       = "MAILSTEAD_DOMAIN"
	EnvVarHostedZoneID = "MAILSTEAD_HOSTED_ZONE_ID"
	EnvVarAccountID    = "MAILSTEAD_ACCOUNT_ID"
	EnvVarRegion       = "MAILSTEAD_REGION"
	EnvVarStrict       = "MAILSTEAD_STRICT"

	// AWS SDK conventions honored as fallbacks for account and region.
	EnvVarAWSAccountID = "AWS_ACCOUNT_ID"
	EnvVarAWSRegion    = "AWS_REGION"
)
