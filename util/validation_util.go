// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.ReplaceAll(fl.Field().String(), "-", ""))
	})
	return &ValidationUtil{validate: v}
}

// ValidateStruct reports every failed field in one error.
func (v *ValidationUtil) ValidateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.FirebaseUID == "" {
		return fmt.Errorf("%w: user identity cannot be empty", mobility_errors.ErrInvalidUserData)
	}
	if err := v.ValidateStruct(user); err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrInvalidUserData, err)
	}
	if user.PhoneNumber != "" {
		if err := v.validate.Var(user.PhoneNumber, "phone"); err != nil {
			return fmt.Errorf("%w: phone number is malformed", mobility_errors.ErrInvalidUserData)
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateUserProfileUpdate(update model.UserProfileUpdate) error {
	if update.Empty() {
		return fmt.Errorf("%w: no profile fields to update", mobility_errors.ErrInvalidUserData)
	}
	if err := v.ValidateStruct(update); err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrInvalidUserData, err)
	}
	if update.PhoneNumber != nil && *update.PhoneNumber != "" {
		if err := v.validate.Var(*update.PhoneNumber, "phone"); err != nil {
			return fmt.Errorf("%w: phone number is malformed", mobility_errors.ErrInvalidUserData)
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateClaim(claim model.ClaimRequest) error {
	if err := v.ValidateStruct(claim); err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrInvalidVehicleData, err)
	}
	if claim.PhoneNumber != "" {
		if err := v.validate.Var(claim.PhoneNumber, "phone"); err != nil {
			return fmt.Errorf("%w: phone number is malformed", mobility_errors.ErrInvalidVehicleData)
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateRepair(repair model.Repair) error {
	if err := v.ValidateStruct(repair); err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrInvalidRepairData, err)
	}
	return nil
}

func (v *ValidationUtil) ValidateSelfCheck(check model.SelfCheck) error {
	if err := v.ValidateStruct(check); err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrInvalidSelfCheckData, err)
	}
	return nil
}
