package metadata

// IsDomainName reports whether domain is usable as a host name in a request
// target. A single trailing dot is accepted.
func IsDomainName(domain string) bool {
	if len(domain) > 1 && domain[len(domain)-1] == '.' {
		domain = domain[:len(domain)-1]
	}
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	var labelLength int
	for i := 0; i < len(domain); i++ {
		switch c := domain[i]; {
		case c == '.':
			if labelLength == 0 {
				return false
			}
			labelLength = 0
		case c <= ' ', c == 0x7f, c == '/', c == ':', c == '@', c == '[', c == ']':
			return false
		default:
			labelLength++
			if labelLength > 63 {
				return false
			}
		}
	}
	return labelLength > 0
}
