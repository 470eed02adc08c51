// Package config defines the environment registry and the
// configuration resolver for mailstead deployments.
//
// Three environments exist: dev, staging, and production. Each has a
// compiled-in [Profile] of defaults. [Resolve] merges a profile with
// process environment variables and explicit [Overrides] into one
// immutable [Resolved] value that the rest of the pipeline consumes.
//
// Resolution precedence, highest first:
//
//	explicit override > process environment variable > profile default
//
// Unknown environment names are a hard error; there is no fallback
// profile.
package config
