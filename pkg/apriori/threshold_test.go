package apriori

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		text    string
		count   int
		total   int
		met     bool
		percent string
	}{
		{"0.6", 3, 5, true, "60%"},
		{"0.6", 2, 5, false, "60%"},
		{"0.1", 1, 10, true, "10%"},
		{"3/5", 3, 5, true, "60%"},
		{"60%", 3, 5, true, "60%"},
		{"0.3333", 1, 3, true, "33.33%"},
		{"0", 0, 5, true, "0%"},
		{"1", 5, 5, true, "100%"},
		{"1", 4, 5, false, "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			th, err := ParseThreshold(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.met, th.Met(tt.count, tt.total))
			assert.Equal(t, tt.percent, th.Percent())
			assert.False(t, th.OutOfRange())
		})
	}
}

func TestParseThresholdRejectsNonNumbers(t *testing.T) {
	for _, text := range []string{"", "abc", "0.6.1", "%"} {
		_, err := ParseThreshold(text)
		assert.Error(t, err, text)
	}
}

func TestThresholdOutOfRange(t *testing.T) {
	for _, text := range []string{"-0.1", "1.01", "200%"} {
		th, err := ParseThreshold(text)
		require.NoError(t, err)
		assert.True(t, th.OutOfRange(), text)
	}
	neg, _ := ParseThreshold("-1")
	assert.True(t, neg.Met(0, 5))
	over, _ := ParseThreshold("1.5")
	assert.False(t, over.Met(5, 5))
}

func TestThresholdMetWithoutTransactions(t *testing.T) {
	th, _ := ParseThreshold("0")
	assert.False(t, th.Met(0, 0))
}

func TestThresholdFromFloat(t *testing.T) {
	th := ThresholdFromFloat(0.1)
	assert.True(t, th.Met(1, 10))
	assert.Equal(t, "0.1", th.String())
	th = ThresholdFromFloat(0.6)
	assert.True(t, th.Met(3, 5))
	assert.InDelta(t, 0.6, th.Float64(), 1e-12)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "60%", FormatPercent(0.6))
	assert.Equal(t, "66.67%", FormatPercent(2.0/3.0))
	assert.Equal(t, "100%", FormatPercent(1))
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "12.5%", FormatPercent(0.125))
}
