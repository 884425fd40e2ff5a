package xpm

// Alphabet is the ordered set of symbols that color codes are built from.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Replacement symbols for the most common colors, in priority order. None of
// these appear in Alphabet.
const prettyNames = " X+.|/"

// codeWidth returns floor(log36(n)) + 1 using integer arithmetic, for n > 0
func codeWidth(n int) int {
	w := 1
	for n >= len(Alphabet) {
		n /= len(Alphabet)
		w++
	}
	return w
}

// Codes returns a function that yields every string of width symbols drawn
// from Alphabet, counting like an odometer with the leftmost symbol varying
// slowest. Once the sequence is exhausted it returns false. Each call to
// Codes starts a fresh sequence.
func Codes(width int) func() (string, bool) {
	if width < 1 {
		return func() (string, bool) {
			return "", false
		}
	}

	digits := make([]int, width)
	b := make([]byte, width)
	done := false

	return func() (string, bool) {
		if done {
			return "", false
		}

		for i, d := range digits {
			b[i] = Alphabet[d]
		}
		code := string(b)

		// Carry from the rightmost symbol
		i := width - 1
		for ; i >= 0; i-- {
			if digits[i]++; digits[i] < len(Alphabet) {
				break
			}
			digits[i] = 0
		}
		done = i < 0

		return code, true
	}
}
