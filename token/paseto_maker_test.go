package token

import (
	"strings"
	"testing"
	"time"

	"psle-tutor-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := utils.InitializeDateLocation(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestPasetoMakerRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	sessionID := uuid.New()
	tokenStr, err := maker.CreateToken(sessionID, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	payload, err := maker.VerifyToken(tokenStr)
	require.NoError(t, err)
	require.Equal(t, sessionID, payload.SessionID)
	require.NotEqual(t, uuid.Nil, payload.ID)
	require.WithinDuration(t, payload.IssuedAt.Add(time.Minute), payload.ExpiredAt, time.Second)
}

func TestPasetoMakerExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	tokenStr, err := maker.CreateToken(uuid.New(), time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = maker.VerifyToken(tokenStr)
	require.ErrorContains(t, err, "expired")
}

func TestPasetoMakerRejectsBadKeySize(t *testing.T) {
	_, err := NewPasetoMaker("too-short")
	require.Error(t, err)
}

func TestPasetoMakerRejectsNilSession(t *testing.T) {
	maker, err := NewPasetoMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	_, err = maker.CreateToken(uuid.Nil, time.Minute)
	require.Error(t, err)
}

func TestPasetoMakerRejectsTamperedToken(t *testing.T) {
	maker, err := NewPasetoMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	tokenStr, err := maker.CreateToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	other, err := NewPasetoMaker(strings.Repeat("y", 32))
	require.NoError(t, err)

	_, err = other.VerifyToken(tokenStr)
	require.Error(t, err)
}
