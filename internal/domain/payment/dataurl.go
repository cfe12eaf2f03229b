package payment

import "regexp"

// pngDataURLPrefix is the prefix every upload is normalized to, whatever
// image subtype the caller declared.
const pngDataURLPrefix = "data:image/png;base64,"

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// NormalizeDataURL strips any data:image/<type>;base64, prefix from the
// payload and re-wraps the remaining base64 body as a PNG data URL.
func NormalizeDataURL(image string) string {
	return pngDataURLPrefix + dataURLPrefix.ReplaceAllString(image, "")
}
