package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeDayToken(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeDayToken(day)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeDayToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, day, decoded, "Day should match after decode")
}

func TestEncodeDayToken_DropsTimeOfDay(t *testing.T) {
	withTime := time.Date(2024, 5, 15, 14, 30, 45, 123, time.UTC)

	decoded, err := DecodeDayToken(EncodeDayToken(withTime))
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), decoded)
}

func TestDecodeDayTokenError(t *testing.T) {
	_, err := DecodeDayToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeDayToken(base64.URLEncoding.EncodeToString([]byte("notadate")))
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse")
}
