package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndVerify(t *testing.T) {
	svc := NewService("sesame", "test-secret", time.Hour)

	token, err := svc.Login("sesame")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(token))
}

func TestLoginWrongCode(t *testing.T) {
	svc := NewService("sesame", "test-secret", time.Hour)

	_, err := svc.Login("open sesame")
	assert.Error(t, err)

	_, err = svc.Login("")
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewService("sesame", "test-secret", time.Hour)

	assert.Error(t, svc.Verify("not-a-token"))
	assert.Error(t, svc.Verify(""))
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := NewService("sesame", "secret-one", time.Hour)
	verifier := NewService("sesame", "secret-two", time.Hour)

	token, err := issuer.Login("sesame")
	require.NoError(t, err)
	assert.Error(t, verifier.Verify(token))
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewService("sesame", "test-secret", -time.Minute)

	token, err := svc.Login("sesame")
	require.NoError(t, err)
	assert.Error(t, svc.Verify(token))
}
