package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"
)

// Pagination bounds shared by the HTTP listing endpoint and the CLI.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

var (
	errNotInteger = validation.NewError("validation_not_integer", "must be an integer")

	offsetRules = []validation.Rule{validation.Min(0)}
	// Threshold rules skip zero values, so Required rejects limit=0.
	limitRules = []validation.Rule{
		validation.Required.Error("must be no less than 1"),
		validation.Min(1),
		validation.Max(MaxLimit),
	}
)

func invalidParam(name string, err error) error {
	return customValidation.WrapValidationError(fmt.Errorf("invalid %s parameter: %w", name, err))
}

// ValidatePagination checks offset >= 0 and 1 <= limit <= MaxLimit. Failures wrap
// ErrInvalidInput and name the offending parameter.
func ValidatePagination(offset, limit int) error {
	if err := validation.Validate(offset, offsetRules...); err != nil {
		return invalidParam("offset", err)
	}
	if err := validation.Validate(limit, limitRules...); err != nil {
		return invalidParam("limit", err)
	}
	return nil
}

// ParsePagination reads the offset and limit query parameters, defaulting to 0 and
// DefaultLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	if offset, err = strconv.Atoi(c.DefaultQuery("offset", "0")); err != nil {
		return 0, 0, invalidParam("offset", errNotInteger)
	}
	if limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))); err != nil {
		return 0, 0, invalidParam("limit", errNotInteger)
	}
	if err := ValidatePagination(offset, limit); err != nil {
		return 0, 0, err
	}
	return offset, limit, nil
}
