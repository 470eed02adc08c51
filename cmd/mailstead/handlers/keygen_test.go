package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeygen_Ed25519(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "key")

	err := Keygen("ed25519", 0, outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	pub, err := os.ReadFile(outPath + ".pub")
	require.NoError(t, err)
	assert.Contains(t, string(pub), "ssh-ed25519")
}

func TestKeygen_RSA(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "key")

	err := Keygen("rsa", 2048, outPath)
	require.NoError(t, err)

	priv, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(priv), "PRIVATE KEY")
}

func TestKeygen_UnknownType(t *testing.T) {
	err := Keygen("dsa", 0, filepath.Join(t.TempDir(), "key"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsa")
}

func TestKeygen_WeakRSARejected(t *testing.T) {
	err := Keygen("rsa", 1024, filepath.Join(t.TempDir(), "key"))
	require.Error(t, err)
}
