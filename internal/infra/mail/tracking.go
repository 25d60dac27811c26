package mail

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hrefPattern = regexp.MustCompile(`href="(https?://[^"]+)"`)

// DecorateHTML wires an HTML body for engagement tracking: every absolute
// http(s) link goes through the click redirect and an open pixel is appended.
// An empty baseURL leaves the body unchanged.
func DecorateHTML(html, baseURL, logID string) string {
	if baseURL == "" || logID == "" {
		return html
	}
	base := strings.TrimRight(baseURL, "/")
	id := url.QueryEscape(logID)

	rewritten := hrefPattern.ReplaceAllStringFunc(html, func(match string) string {
		target := hrefPattern.FindStringSubmatch(match)[1]
		return fmt.Sprintf(`href="%s"`, clickURL(base, id, target))
	})

	pixel := fmt.Sprintf(`<img src="%s/track-email?id=%s" width="1" height="1" alt="" style="display:none" />`, base, id)
	return rewritten + pixel
}

// clickURL builds the redirect link; id must already be query-escaped.
func clickURL(base, id, target string) string {
	return fmt.Sprintf("%s/track-click?id=%s&amp;url=%s", base, id, url.QueryEscape(target))
}
