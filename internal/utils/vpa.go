package utils

import "regexp"

// NPCI-format virtual payment address: handle@psp, e.g. "ravi.k@okaxis".
var vpaPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{1,48}@[a-zA-Z]{2,64}$`)

func IsValidVPA(s string) bool {
	return vpaPattern.MatchString(s)
}
