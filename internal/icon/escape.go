package icon

import (
	"encoding/xml"
	"strings"
)

func escapeText(s string) string {
	var sb strings.Builder
	// EscapeText only fails when the writer does
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
