package digits

// Frequency counts occurrences of each digit value. The index is the digit,
// so all ten keys are always present.
type Frequency [Base]int

// Tally counts the digits in seq. Values outside 0-9 are ignored.
func Tally(seq []Digit) Frequency {
	var f Frequency
	for _, d := range seq {
		if d.Valid() {
			f[d]++
		}
	}
	return f
}

// Count returns how many times d occurred, or 0 for a non-digit.
func (f Frequency) Count(d Digit) int {
	if !d.Valid() {
		return 0
	}
	return f[d]
}

// Total returns the sum of all counts, which equals the length of the
// sequence the frequency was tallied from.
func (f Frequency) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// Add returns the element-wise sum of f and other.
func (f Frequency) Add(other Frequency) Frequency {
	var sum Frequency
	for i := range f {
		sum[i] = f[i] + other[i]
	}
	return sum
}

// Map returns the frequency as a map with exactly ten keys, 0 through 9.
func (f Frequency) Map() map[Digit]int {
	m := make(map[Digit]int, Base)
	for i, c := range f {
		m[Digit(i)] = c
	}
	return m
}

// MostCommon returns the digit with the highest count. Ties go to the lower digit.
func (f Frequency) MostCommon() (Digit, int) {
	best := 0
	for i := 1; i < Base; i++ {
		if f[i] > f[best] {
			best = i
		}
	}
	return Digit(best), f[best]
}
