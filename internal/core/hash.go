package core

import "fmt"

// HashContent is a cheap content fingerprint used for ETags on rendered pages.
func HashContent(content []byte) string {
	result := 0
	for _, b := range content {
		result = (result*31 + int(b)) % 1000000007
	}
	return fmt.Sprintf("%d-%d", len(content), result)
}

func ETag(content []byte) string {
	return `"` + HashContent(content) + `"`
}
