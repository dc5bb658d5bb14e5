package inir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFaultCode(t *testing.T) {
	descriptions, err := DecodeFaultCode("a1aaaa1a")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Over Range of Conc.%v.v Operation > Full Scale",
		"Last Reset was because of a Power on Reset",
	}, descriptions)
}

func TestDecodeFaultCodeNoFaults(t *testing.T) {
	descriptions, err := DecodeFaultCode("aaaaaaaa")
	assert.NoError(t, err)
	assert.Empty(t, descriptions)
}

func TestDecodeFaultCodeUppercaseSentinel(t *testing.T) {
	descriptions, err := DecodeFaultCode("AAAAAAA1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Sensor not Present"}, descriptions)
}

func TestDecodeFaultCodeUnknown(t *testing.T) {
	// no category defines '9'
	for _, code := range []string{"9aaaaaaa", "aaaa9aaa", "aaaaaaa9"} {
		_, err := DecodeFaultCode(code)
		var unknown *UnknownFaultError
		assert.ErrorAs(t, err, &unknown)
		assert.Equal(t, byte('9'), unknown.Digit)
	}
}

func TestDecodeFaultCodeEmpty(t *testing.T) {
	_, err := DecodeFaultCode("")
	assert.ErrorIs(t, err, ErrEmptyFaultCode)
}

func TestFaultTableShape(t *testing.T) {
	// every category 0-7 is present with at least one entry
	for category := 0; category <= 7; category++ {
		assert.NotEmpty(t, faultTable[category], "category %d", category)
	}
}
