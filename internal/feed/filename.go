package feed

import (
	"fmt"
	"strings"
)

// NormalizeTemplate ensures the file name template carries a numeric
// placeholder for the program ID. When the placeholder is missing it is
// inserted before the file extension, or appended when there is none.
// The second return value reports whether the template was corrected.
func NormalizeTemplate(template string) (string, bool) {
	if strings.Contains(template, "%d") {
		return template, false
	}
	if dot := strings.LastIndex(template, "."); dot > -1 {
		return template[:dot] + "%d" + template[dot:], true
	}
	return template + "%d", true
}

// Filename fills the normalized template with the numeric program ID.
func Filename(template string, id int64) string {
	return fmt.Sprintf(template, id)
}
