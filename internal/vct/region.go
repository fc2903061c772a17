package vct

import "strings"

// regionTokens is the substring priority order used to classify file paths.
var regionTokens = []string{"AMERICAS", "EMEA", "PACIFIC", "CHINA"}

// RegionFromPath infers a competitive-region tag from a file path. Paths in
// the VCT corpus carry the region as a directory component; the first token
// found wins, and a path with no token is "UNKNOWN".
func RegionFromPath(path string) string {
	for _, token := range regionTokens {
		if strings.Contains(path, token) {
			return token
		}
	}
	return "UNKNOWN"
}
