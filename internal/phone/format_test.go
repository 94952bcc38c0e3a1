package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "+14155551234", Format("(415) 555-1234", FormatE164))
	assert.Equal(t, "4155551234", Format("(415) 555-1234", FormatNational))
	assert.Equal(t, "+1 (415) 555-1234", Format("(415) 555-1234", FormatInternational))
}

func TestFormatInvalidPassthrough(t *testing.T) {
	assert.Equal(t, "12345", Format("12345", FormatE164))
}
