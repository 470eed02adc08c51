package aws

import (
	"errors"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
)

// isRetryable classifies errors worth another attempt: throttling and
// the eventual-consistency window after resource creation.
func isRetryable(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "Throttling", "ThrottlingException", "RequestLimitExceeded",
		"InvalidInstanceID.NotFound":
		return true
	}
	return false
}

// isDuplicateRule reports whether an ingress authorization failed only
// because the rule already exists.
func isDuplicateRule(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "InvalidPermission.Duplicate"
}

// isBucketOwned reports whether a bucket creation failed because the
// bucket already exists under this account.
func isBucketOwned(err error) bool {
	var owned *s3types.BucketAlreadyOwnedByYou
	if errors.As(err, &owned) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "BucketAlreadyOwnedByYou"
}

// isSecretExists reports whether secret creation failed because the
// secret already exists.
func isSecretExists(err error) bool {
	var exists *smtypes.ResourceExistsException
	return errors.As(err, &exists)
}
