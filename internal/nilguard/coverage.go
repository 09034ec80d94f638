package nilguard

import "strings"

// optionalMarker is the null-conditional access marker in normalized
// expression text.
const optionalMarker = "?."

// Covers reports whether the non-nullness proof of asserted also
// applies to key:
//
//   - exact text equality;
//   - or, when asserted contains null-conditional markers, key equals
//     asserted with all markers stripped;
//   - or key equals a proper prefix of asserted ending immediately
//     before one of its markers (asserting `a?.b?.c` also covers `a`
//     and `a.b` — the chain could not have evaluated otherwise).
func Covers(asserted, key string) bool {
	if asserted == key {
		return true
	}

	if !strings.Contains(asserted, optionalMarker) {
		return false
	}

	if strings.ReplaceAll(asserted, optionalMarker, ".") == key {
		return true
	}

	for i := 0; i+len(optionalMarker) <= len(asserted); i++ {
		if asserted[i:i+len(optionalMarker)] != optionalMarker {
			continue
		}
		prefix := strings.ReplaceAll(asserted[:i], optionalMarker, ".")
		if prefix == key {
			return true
		}
	}

	return false
}

// owns reports whether lhs is key itself or an owning prefix of it:
// `a` owns `a.b`, with components separated by dots.
func owns(lhs, key string) bool {
	if lhs == key {
		return true
	}
	return strings.HasPrefix(key, lhs+".")
}
