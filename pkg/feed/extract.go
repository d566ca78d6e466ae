package feed

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const maxSummaryLen = 500

var (
	metricPatterns = []struct {
		re  *regexp.Regexp
		set func(m *Metrics, v int)
	}{
		{regexp.MustCompile(`播放量[:：]\s*(\d+)`), func(m *Metrics, v int) { m.Views = v }},
		{regexp.MustCompile(`点赞[:：]\s*(\d+)`), func(m *Metrics, v int) { m.Likes = v }},
		{regexp.MustCompile(`评论[:：]\s*(\d+)`), func(m *Metrics, v int) { m.Comments = v }},
		{regexp.MustCompile(`硬币[:：]\s*(\d+)`), func(m *Metrics, v int) { m.Coins = v }},
		{regexp.MustCompile(`收藏[:：]\s*(\d+)`), func(m *Metrics, v int) { m.Stars = v }},
	}
	metricLineRe = regexp.MustCompile(`(播放量|点赞|评论|硬币|收藏)[:：]\s*\d+`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// extractMetrics reads engagement counters from an item description, missing counters are zero
func extractMetrics(description string) Metrics {
	var m Metrics
	for _, p := range metricPatterns {
		match := p.re.FindStringSubmatch(description)
		if len(match) < 2 {
			continue
		}
		if v, err := strconv.Atoi(match[1]); err == nil {
			p.set(&m, v)
		}
	}
	return m
}

// cleanDescription turns an html description into a plain text summary without metric counters.
// The policy drops script and style elements together with their content.
func cleanDescription(policy *bluemonday.Policy, description string) string {
	if description == "" {
		return ""
	}
	text := strings.NewReplacer("<br>", " ", "<br/>", " ", "<br />", " ", "</p>", " </p>").Replace(description)
	text = html.UnescapeString(policy.Sanitize(text))
	text = metricLineRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
	return truncate(text, maxSummaryLen)
}

// extractThumbnail returns src of the first image in the description
func extractThumbnail(description string) string {
	if !strings.Contains(description, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
