package core

import "strings"

// BuildURL joins a resolved download path and archive filename with
// exactly one separating slash. It never fails; a malformed path just
// produces a URL the availability probe will reject.
func BuildURL(basePath string, fileName string) string {
	base := strings.TrimSuffix(strings.TrimSpace(basePath), "/")
	file := strings.TrimPrefix(strings.TrimSpace(fileName), "/")
	return base + "/" + file
}
