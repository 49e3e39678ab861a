package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/metrics"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/util"
)

// CredentialVerifier turns an Authorization header into a principal.
type CredentialVerifier interface {
	VerifyHeader(ctx context.Context, header string) (*pdp_model.Principal, error)
}

// Authenticate rejects requests without a verifiable bearer credential and
// stores the principal on the context for the handlers.
func Authenticate(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := verifier.VerifyHeader(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			metrics.CredentialVerifications.WithLabelValues("unknown", outcomeFor(err)).Inc()
			switch {
			case errors.Is(err, mobility_errors.ErrKeySetUnavailable):
				util.RespondWithError(c, http.StatusServiceUnavailable, "Identity provider unavailable", err)
			case errors.Is(err, mobility_errors.ErrNoCredential):
				util.RespondWithError(c, http.StatusUnauthorized, "Missing credential", err)
			case errors.Is(err, mobility_errors.ErrInvalidCredential):
				util.RespondWithError(c, http.StatusUnauthorized, "Invalid credential", err)
			default:
				util.RespondWithError(c, http.StatusInternalServerError, "Failed to verify credential", err)
			}
			c.Abort()
			return
		}

		metrics.CredentialVerifications.WithLabelValues(string(principal.Issuer), "valid").Inc()
		util.SetPrincipal(c, principal)
		c.Next()
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, mobility_errors.ErrKeySetUnavailable):
		return "key_set_unavailable"
	case errors.Is(err, mobility_errors.ErrCredentialExpired):
		return "expired"
	case errors.Is(err, mobility_errors.ErrNoCredential):
		return "missing"
	case errors.Is(err, mobility_errors.ErrInvalidCredential):
		return "invalid"
	}
	return "error"
}
