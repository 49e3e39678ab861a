// Package auth verifies bearer credentials from the two trust domains the
// API accepts and turns them into a principal.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

// Authenticator validates one kind of credential.
//
// Return values:
//   - (*Principal, nil): the credential is valid.
//   - (nil, nil): the credential is not this authenticator's kind.
//   - (nil, err wrapping ErrInvalidCredential): this authenticator's kind,
//     but unverifiable. The chain still tries the remaining authenticators.
//   - (nil, other err): infrastructure failure; the chain stops.
type Authenticator interface {
	Name() string
	Authenticate(ctx context.Context, rawToken string) (*pdp_model.Principal, error)
}

// Verifier runs authenticators in order and returns the first principal.
type Verifier struct {
	authenticators []Authenticator
	timeout        time.Duration
}

func NewVerifier(timeout time.Duration, authenticators ...Authenticator) *Verifier {
	return &Verifier{authenticators: authenticators, timeout: timeout}
}

// VerifyHeader verifies an Authorization header value.
func (v *Verifier) VerifyHeader(ctx context.Context, header string) (*pdp_model.Principal, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	return v.Verify(ctx, token)
}

func (v *Verifier) Verify(ctx context.Context, rawToken string) (*pdp_model.Principal, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, mobility_errors.ErrNoCredential
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	var lastErr error
	for _, a := range v.authenticators {
		principal, err := a.Authenticate(ctx, rawToken)
		switch {
		case err == nil && principal != nil:
			if !principal.Valid() {
				return nil, fmt.Errorf("%w: %s produced an inconsistent principal", mobility_errors.ErrInvalidCredential, a.Name())
			}
			return principal, nil
		case err == nil:
			continue
		case errors.Is(err, mobility_errors.ErrInvalidCredential):
			logger.Debug("Credential rejected, trying next authenticator",
				zap.String("authenticator", a.Name()),
				zap.Error(err))
			lastErr = err
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return nil, fmt.Errorf("%w: %v", mobility_errors.ErrInvalidCredential, err)
		default:
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, mobility_errors.ErrInvalidCredential
}

// BearerToken extracts the token from an Authorization header.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", mobility_errors.ErrNoCredential
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", fmt.Errorf("%w: expected a bearer token", mobility_errors.ErrInvalidCredential)
	}
	// "Bearer" with nothing after it carries no credential at all.
	token = strings.TrimSpace(token)
	if token == "" {
		return "", mobility_errors.ErrNoCredential
	}
	return token, nil
}

func invalid(reason string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", mobility_errors.ErrInvalidCredential, reason)
	}
	return fmt.Errorf("%w: %s: %w", mobility_errors.ErrInvalidCredential, reason, err)
}
