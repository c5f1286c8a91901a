package policy

import "errors"

var (
	ErrPolicyNotFound  = errors.New("policy not found")
	ErrMalformedPolicy = errors.New("malformed policy configuration")
	ErrUnknownType     = errors.New("unknown policy type")
	ErrOwnerOnly       = errors.New("only the company owner may change policies")
)
