package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("03/01/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.125000001))
	assert.Equal(t, 0.3, RoundWithTwoDecimalPlace(0.1+0.2))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n\t\"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "[\n\t1,\n\t2\n]", PrettyJson([]byte(`[1,2]`)))
}
