package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateItemInputTitle(t *testing.T) {
	assert.ErrorIs(t, ValidateItemInput("", "", "", "", nil, nil), ErrTitleTooShort)
	assert.ErrorIs(t, ValidateItemInput("ab", "", "", "", nil, nil), ErrTitleTooShort)
	// Whitespace does not count toward the minimum.
	assert.ErrorIs(t, ValidateItemInput("  a  ", "", "", "", nil, nil), ErrTitleTooShort)
	assert.NoError(t, ValidateItemInput("abc", "", "", "", nil, nil))

	long := strings.Repeat("a", 101)
	assert.ErrorIs(t, ValidateItemInput(long, "", "", "", nil, nil), ErrTitleTooLong)
	assert.NoError(t, ValidateItemInput(strings.Repeat("a", 100), "", "", "", nil, nil))
}

func TestValidateItemInputCountsRunesNotBytes(t *testing.T) {
	// 100 kanji is 300 bytes but still within the 100-character limit.
	assert.NoError(t, ValidateItemInput(strings.Repeat("山", 100), "", "", "", nil, nil))
	assert.ErrorIs(t, ValidateItemInput(strings.Repeat("山", 101), "", "", "", nil, nil), ErrTitleTooLong)

	assert.NoError(t, ValidateItemInput("Run a marathon", strings.Repeat("é", 500), "", "", nil, nil))
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", strings.Repeat("é", 501), "", "", nil, nil), ErrDescriptionTooLong)
}

func TestValidateItemInputDescription(t *testing.T) {
	assert.NoError(t, ValidateItemInput("Run a marathon", strings.Repeat("d", 500), "", "", nil, nil))
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", strings.Repeat("d", 501), "", "", nil, nil), ErrDescriptionTooLong)
}

func TestValidateItemInputStatusAndPriority(t *testing.T) {
	assert.NoError(t, ValidateItemInput("Run a marathon", "", "In Progress", "High", nil, nil))
	assert.NoError(t, ValidateItemInput("Run a marathon", "", "", "", nil, nil))
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", "", "Paused", "", nil, nil), ErrInvalidStatus)
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", "", "", "Urgent", nil, nil), ErrInvalidPriority)
	// Status values are case sensitive.
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", "", "completed", "", nil, nil), ErrInvalidStatus)
}

func TestValidateItemInputDates(t *testing.T) {
	good := "2026-03-01"
	bad := "03/01/2026"
	empty := ""

	assert.NoError(t, ValidateItemInput("Run a marathon", "", "", "", &good, &good))
	assert.NoError(t, ValidateItemInput("Run a marathon", "", "", "", &empty, nil))
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", "", "", "", &bad, nil), ErrInvalidDate)
	assert.ErrorIs(t, ValidateItemInput("Run a marathon", "", "", "", nil, &bad), ErrInvalidDate)
}
