package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wanderlist/wanderlist/internal/model"
)

const (
	itemTitleMinLength       = 3
	itemTitleMaxLength       = 100
	itemDescriptionMaxLength = 500
)

var (
	ErrTitleTooShort      = fmt.Errorf("title must be at least %d characters", itemTitleMinLength)
	ErrTitleTooLong       = fmt.Errorf("title is too long (max %d characters)", itemTitleMaxLength)
	ErrDescriptionTooLong = fmt.Errorf("description is too long (max %d characters)", itemDescriptionMaxLength)
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidDate        = errors.New("dates must use the YYYY-MM-DD format")
)

// ValidateItemInput checks the caller-supplied fields of a bucket list
// item. Empty status and priority are allowed; defaults apply
// downstream.
func ValidateItemInput(title, description, status, priority string, targetDate, completionDate *string) error {
	// Limits are in characters, so multi-byte text is measured in
	// runes rather than bytes.
	trimmed := strings.TrimSpace(title)
	if utf8.RuneCountInString(trimmed) < itemTitleMinLength {
		return ErrTitleTooShort
	}
	if utf8.RuneCountInString(trimmed) > itemTitleMaxLength {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(description) > itemDescriptionMaxLength {
		return ErrDescriptionTooLong
	}

	if status != "" && !model.ValidStatus(status) {
		return ErrInvalidStatus
	}

	if priority != "" && !model.ValidPriority(priority) {
		return ErrInvalidPriority
	}

	err := validateDate(targetDate)
	if err != nil {
		return err
	}

	return validateDate(completionDate)
}

func validateDate(date *string) error {
	if date == nil || *date == "" {
		return nil
	}

	_, err := time.Parse(model.DateLayout, *date)
	if err != nil {
		return ErrInvalidDate
	}

	return nil
}
