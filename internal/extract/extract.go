package extract

import "regexp"

// imagePattern matches http(s) URLs ending in a known image extension.
// The character run is greedy and tolerates whitespace, so a match can span
// adjacent URL-like text. Only the listed spellings of each extension count.
var imagePattern = regexp.MustCompile(
	`(http(s?)://)([/|.\p{L}\p{M}\p{Nd}\p{Pc}\s\v\x{85}\p{Z}-])*\.(?:jpg|gif|png|JPG|GIF|PNG|webp|WEBP)`,
)

// ImageURLs returns the image URLs found in text, in first-seen order,
// with exact duplicates removed.
func ImageURLs(text string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, m := range imagePattern.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	return out
}
