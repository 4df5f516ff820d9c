package hexconv

// Halfbyte maps a hexadecimal digit (of any case) to its value. Any other character maps
// to 0xFF.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for i, c := range "0123456789abcdef" {
		table[c] = byte(i)
	}

	for i, c := range "ABCDEF" {
		table[c] = byte(10 + i)
	}

	return table
}()

// maxDigits is how many digits fit into uint64.
const maxDigits = 64 / 4

// ParseUint parses the whole slice as a hexadecimal number. False is returned if the slice
// is empty, contains anything besides hexadecimal digits or overflows uint64.
func ParseUint(digits []byte) (n uint64, ok bool) {
	if len(digits) == 0 || len(digits) > maxDigits {
		return 0, false
	}

	for _, c := range digits {
		val := Halfbyte[c]
		if val == 0xFF {
			return 0, false
		}

		n = (n << 4) | uint64(val)
	}

	return n, true
}
