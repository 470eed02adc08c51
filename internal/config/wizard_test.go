package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardResult_ToOverrides(t *testing.T) {
	t.Parallel()

	result := &WizardResult{
		Environment:  EnvProduction,
		KeyPairName:  "  ops-key ",
		DomainName:   "mail.example.com",
		HostedZoneID: "Z123",
		OfficeCIDR:   "203.0.113.0/24",
	}

	o := result.ToOverrides()

	assert.Equal(t, "ops-key", o.KeyPairName)
	assert.Equal(t, "mail.example.com", o.DomainName)
	assert.Equal(t, "Z123", o.HostedZoneID)
	assert.Equal(t, []string{"203.0.113.0/24"}, o.SSHCidrs)
}

func TestWizardResult_ToOverrides_EmptyCIDR(t *testing.T) {
	t.Parallel()

	o := (&WizardResult{KeyPairName: "ops-key"}).ToOverrides()
	assert.Nil(t, o.SSHCidrs)
}

func TestWizardValidators(t *testing.T) {
	t.Parallel()

	require.Error(t, validateKeyPairName(""))
	require.Error(t, validateKeyPairName("   "))
	require.NoError(t, validateKeyPairName("ops-key"))

	require.NoError(t, validateCIDR(""))
	require.NoError(t, validateCIDR("203.0.113.0/24"))
	require.Error(t, validateCIDR("203.0.113.0"))
	require.Error(t, validateCIDR("not-a-cidr"))

	require.NoError(t, validateDomain(""))
	require.NoError(t, validateDomain("mail.example.com"))
	require.Error(t, validateDomain("nodots"))
	require.Error(t, validateDomain("has space.example.com"))
}
