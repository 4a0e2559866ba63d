package apriori

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

/*
Threshold represents a minimum ratio that supports or confidences
must reach. It is kept as an exact rational number so that ratios
equal to the threshold, like 3/5 against 0.6, are met.
*/
type Threshold struct {
	r    *big.Rat
	text string
}

/*
ParseThreshold takes a decimal (0.6), fraction (3/5) or percentage
(60%) string and returns the Threshold it represents or an error
if it cannot be parsed.
*/
func ParseThreshold(s string) (Threshold, error) {
	text := strings.TrimSpace(s)
	percent := strings.HasSuffix(text, "%")
	r, ok := new(big.Rat).SetString(strings.TrimSuffix(text, "%"))
	if !ok {
		return Threshold{}, fmt.Errorf("parsing threshold %q: not a number", s)
	}
	if percent {
		r.Quo(r, big.NewRat(100, 1))
	}
	return Threshold{r, text}, nil
}

/*
ThresholdFromFloat takes a float64 and returns the Threshold for the
shortest decimal representation of it, so that 0.1 is exactly 1/10.
*/
func ThresholdFromFloat(f float64) Threshold {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		// NaN and infinities
		r = new(big.Rat).SetFloat64(f)
		if r == nil {
			r = new(big.Rat)
		}
	}
	return Threshold{r, text}
}

func (t Threshold) rat() *big.Rat {
	if t.r == nil {
		return new(big.Rat)
	}
	return t.r
}

/*
Met takes a count and a total and returns whether count/total
is greater or equal to the threshold. A zero total never meets
a threshold.
*/
func (t Threshold) Met(count, total int) bool {
	if total <= 0 {
		return false
	}
	return big.NewRat(int64(count), int64(total)).Cmp(t.rat()) >= 0
}

// OutOfRange returns whether the threshold is below 0 or over 1
func (t Threshold) OutOfRange() bool {
	r := t.rat()
	return r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) > 0
}

// Float64 returns the nearest float64 value to the threshold
func (t Threshold) Float64() float64 {
	f, _ := t.rat().Float64()
	return f
}

// Percent returns the threshold as a percentage string like 60%
func (t Threshold) Percent() string {
	p := new(big.Rat).Mul(t.rat(), big.NewRat(100, 1))
	return trimDecimals(p.FloatString(2)) + "%"
}

func (t Threshold) String() string {
	if t.text != "" {
		return t.text
	}
	return t.rat().RatString()
}

// FormatPercent formats a ratio as a percentage with up to two decimals
func FormatPercent(ratio float64) string {
	return trimDecimals(strconv.FormatFloat(ratio*100, 'f', 2, 64)) + "%"
}

func trimDecimals(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
