package identity

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// IdentityAPI is an interface used to mock API calls made to the aws STS service
type IdentityAPI interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// AccountID returns the account id of the credentials in use
func AccountID(ctx context.Context, api IdentityAPI) (string, error) {
	output, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}

	if output.Account == nil || *output.Account == "" {
		return "", errors.New("caller identity has no account")
	}

	return *output.Account, nil
}
