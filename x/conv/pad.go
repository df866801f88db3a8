package conv

// Pad2 writes n as exactly two base-10 digits into buf.
// n outside [0,99] is clamped; buf shorter than 2 returns empty.
func Pad2(buf []byte, n int) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	if n < 0 {
		n = 0
	}
	if n > 99 {
		n = 99
	}
	buf[0] = byte('0' + n/10)
	buf[1] = byte('0' + n%10)
	return buf[:2]
}
