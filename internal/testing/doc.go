// Package testing provides test utilities and builders shared across
// test files.
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithEnvironment(config.EnvProduction).
//	    WithKeyPair("ops-key").
//	    Build()
package testing
