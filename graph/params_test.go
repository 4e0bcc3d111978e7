package graph

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParamsValidate(t *testing.T) {
	p := DefaultParams()
	assert.NoError(t, p.validate())
}

func TestWithDefaultsFillsZeroFields(t *testing.T) {
	p := Params{}.WithDefaults()
	assert.Equal(t, DefaultParams(), p)
}

func TestValidateRejectsBadK(t *testing.T) {
	p := DefaultParams()
	p.K = 0
	assert.True(t, errors.Is(p.validate(), ErrInvalidParams))

	p = DefaultParams()
	p.K = 33
	assert.True(t, errors.Is(p.validate(), ErrInvalidParams))
}

func TestValidateRejectsNoCopyWithASCII(t *testing.T) {
	p := DefaultParams()
	p.CopyMode = NoCopy
	p.SeqFormat = ASCII
	assert.True(t, errors.Is(p.validate(), ErrInvalidParams))
}

func TestValidateAcceptsNoCopyWith4Bit(t *testing.T) {
	p := DefaultParams()
	p.CopyMode = NoCopy
	p.SeqFormat = FourBit
	assert.NoError(t, p.validate())
}
