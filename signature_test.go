package fwimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSignatureKnownNames(t *testing.T) {
	sig, err := ResolveSignature(SignatureFrodoII)
	require.NoError(t, err)
	assert.Equal(t, [SignatureLen]byte{'F', 'r', 'o', 'd', 'o', 'I', 'I'}, sig)

	sig, err = ResolveSignature(SignatureChopper)
	require.NoError(t, err)
	assert.Equal(t, [SignatureLen]byte{'C', 'h', 'o', 'p', 'p', 'e', 'r'}, sig)
}

func TestResolveSignatureRaw(t *testing.T) {
	sig, err := ResolveSignature("abc1234")
	require.NoError(t, err)
	assert.Equal(t, [SignatureLen]byte{'a', 'b', 'c', '1', '2', '3', '4'}, sig)
}

func TestResolveSignatureBadLength(t *testing.T) {
	for _, s := range []string{"", "Frodo", "FrodoIII"} {
		_, err := ResolveSignature(s)
		assert.ErrorIs(t, err, ErrBadSignatureLength, "%q", s)
	}
}

func TestKnownSignature(t *testing.T) {
	assert.True(t, KnownSignature(SignatureFrodoII))
	assert.True(t, KnownSignature(SignatureChopper))
	assert.True(t, KnownSignature(SignatureGandolf))
	assert.False(t, KnownSignature("abc1234"))
}
