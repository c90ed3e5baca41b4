package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unbounded is what Nice prints for bounds at or beyond UnboundedLimit.
const Unbounded = "--"

// DefaultDigits is the significant-digit count used for every stored bound.
const DefaultDigits = 8

// OrderOfMagnitude returns sign(x)*10^floor(log10|x|), or 1 for zero.
func OrderOfMagnitude(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	s := 1.0
	if x < 0 {
		s = -1.0
	}
	return s * math.Pow(10, math.Floor(math.Log10(math.Abs(x))))
}

// SigRound rounds x to d digits relative to its order of magnitude and
// then to d decimal places. Rounding is half away from zero.
func SigRound(x float64, d int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if d == 0 {
		return math.Round(x)
	}
	oom := OrderOfMagnitude(x)
	p := math.Pow(10, float64(d))
	return roundDecimals(math.Round(x/oom*p)/p*oom, d)
}

// SigRoundNice is Nice(SigRound(x, d)).
func SigRoundNice(x float64, d int) string {
	return Nice(SigRound(x, d))
}

// Nice renders a bound for display: "--" when unbounded, the shortest
// decimal form when it fits in 8 characters, %.3e otherwise.
func Nice(x float64) string {
	if math.IsNaN(x) || math.Abs(x) > UnboundedLimit {
		return Unbounded
	}
	s := shortestDecimal(x)
	if len(s) > 8 {
		return fmt.Sprintf("%.3e", x)
	}
	return s
}

// roundDecimals rounds x to d decimal places. Values whose binary exponent
// leaves no fraction at that precision come back unchanged, and values too
// small to survive come back as zero.
func roundDecimals(x float64, d int) float64 {
	if x == 0 || d <= 0 {
		return math.Round(x)
	}
	_, binexp := math.Frexp(x)
	const floatDig = 17
	var over, under int
	if binexp > 0 {
		over = binexp / 4
		under = binexp/3 + 1
	} else {
		over = binexp/3 - 1
		under = binexp / 4
	}
	if d >= floatDig-over {
		return x
	}
	if d < -under {
		return 0
	}
	s := math.Pow(10, float64(d))
	return roundHalfUp(x, s) / s
}

func roundHalfUp(x, s float64) float64 {
	f := math.Round(x * s)
	if x > 0 {
		if (f+0.5)/s <= x {
			f++
		}
		return f
	}
	if (f-0.5)/s >= x {
		f--
	}
	return f
}

// shortestDecimal formats x with the shortest round-trip digits, using
// fixed notation for decimal exponents in (-4, 16] and d.ddde±XX outside.
// Fixed output always carries a fractional digit.
func shortestDecimal(x float64) string {
	if x == 0 {
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	e := strconv.FormatFloat(x, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	decpt := exp + 1

	switch {
	case decpt > 0 && decpt <= 16:
		if len(digits) <= decpt {
			return sign + digits + strings.Repeat("0", decpt-len(digits)) + ".0"
		}
		return sign + digits[:decpt] + "." + digits[decpt:]
	case decpt <= 0 && decpt > -4:
		return sign + "0." + strings.Repeat("0", -decpt) + digits
	default:
		frac := digits[1:]
		if frac == "" {
			frac = "0"
		}
		return fmt.Sprintf("%s%s.%se%+03d", sign, digits[:1], frac, decpt-1)
	}
}
