package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("tx_type", validateTransactionType)
	_ = v.RegisterValidation("period_type", validatePeriodType)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("user_id", validateUserID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCategoryType validates that a category type is income or expense
func validateCategoryType(fl validator.FieldLevel) bool {
	categoryType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"income":  true,
		"expense": true,
	}
	return validTypes[categoryType]
}

// validateTransactionType validates the transaction type filter values.
// "all" and empty are accepted because they mean no narrowing.
func validateTransactionType(fl validator.FieldLevel) bool {
	txType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"":        true,
		"all":     true,
		"income":  true,
		"expense": true,
	}
	return validTypes[txType]
}

// validatePeriodType validates that period type is one of the recognized granularities
func validatePeriodType(fl validator.FieldLevel) bool {
	periodType := fl.Field().String()
	validTypes := map[string]bool{
		"year":  true,
		"month": true,
		"date":  true,
	}
	return validTypes[periodType]
}

// validateAmount validates that an amount is non-negative with at most 2 decimal places.
// Sign is carried by the transaction type, never by the amount.
func validateAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	if amount == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d+(\.\d{1,2})?$`, amount)
	return matched
}

// validateUserID validates that a user ID is a valid UUID
func validateUserID(fl validator.FieldLevel) bool {
	userID := fl.Field().String()
	if userID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, userID)
	return matched
}
