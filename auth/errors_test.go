package auth

import (
	"fmt"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
)

func errUnknownKid(kid string) error {
	return fmt.Errorf("%w: %s", mobility_errors.ErrUnknownSigningKey, kid)
}
