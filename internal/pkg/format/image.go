package format

import (
	"fmt"
	"math/rand/v2"
	"regexp"
)

var base64ImagePattern = regexp.MustCompile(`^data:image/(png|jpe?g|gif|webp);base64,`)

// IsBase64Image reports whether data is a base64 data URI of a png, jpeg,
// gif or webp image.
func IsBase64Image(data string) bool {
	return base64ImagePattern.MatchString(data)
}

// GenerateRandomHexCode returns a random colour as six lowercase hex digits
// without the leading '#'.
func GenerateRandomHexCode(r *rand.Rand) string {
	return fmt.Sprintf("%06x", r.IntN(0xffffff))
}
