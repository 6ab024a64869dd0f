package shared

import (
	"fmt"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"net/url"
	"strings"
	"unicode"
)

const MaxPreviewLen = 120

var stripPolicy = bluemonday.StrictPolicy()

func GetHostName(userUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

func MakeFullMoniker(hostName, handle string) string {
	return "@" + handle + "@" + hostName
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// StripHtml reduces status HTML to plain text with collapsed whitespace.
func StripHtml(text string) string {
	text = strings.ReplaceAll(text, "</p>", "</p> ")
	text = strings.ReplaceAll(text, "<br>", " ")
	text = strings.ReplaceAll(text, "<br/>", " ")
	text = stripPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// MakePreview is the short plain-text form of a status used in notifications and logs.
func MakePreview(text string) string {
	return TruncateWithEllipsis(StripHtml(text), MaxPreviewLen)
}
