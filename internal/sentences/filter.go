package sentences

// Traceable reports whether every character of s is an ASCII letter, digit or
// space, and s has at least one non-space character.
func Traceable(s string) bool {
	seen := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == ' ':
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			seen = true
		default:
			return false
		}
	}
	return seen
}

// Filter keeps the traceable sentences of in.
func Filter(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if Traceable(s) {
			out = append(out, s)
		}
	}
	return out
}
