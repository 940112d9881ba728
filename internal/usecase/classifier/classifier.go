package classifier

import (
	"regexp"
	"strings"

	"chrome-agent-pipeline/internal/domain/entity"
)

// browserKeywords is fixed domain data, not configuration. Matching is
// substring-based against the lowercased message, so the English entries
// are stored lowercase.
var browserKeywords = []string{
	"打开网页", "打开网站", "访问", "浏览", "网页", "网站",
	"提取数据", "抓取", "爬取", "获取内容", "截图",
	"点击", "输入", "搜索", "填写表单", "下载",
	"open website", "visit", "browse", "extract", "scrape",
	"click", "input", "search", "screenshot",
}

// extractKeywords selects the extract sub-intent once a message is already
// classified as a browser task.
var extractKeywords = []string{"提取", "抓取", "获取", "extract", "scrape"}

var (
	urlPattern = regexp.MustCompile(`https?://\S+`)
	// First quoted substring anywhere in the message. Mismatched quote
	// pairs ("…' / '…") are accepted on purpose.
	quotedPattern = regexp.MustCompile(`["']([^"']+)["']`)
)

// Classifier decides whether a message describes a browser-automation task.
// It is pure: no state is kept between calls and classification never fails.
type Classifier struct {
	autoDetect bool
}

func New(autoDetect bool) *Classifier {
	return &Classifier{autoDetect: autoDetect}
}

func (c *Classifier) Classify(message string) entity.Classification {
	if !c.autoDetect {
		return entity.Classification{}
	}

	lowered := strings.ToLower(message)
	url := urlPattern.FindString(message)

	if !containsAny(lowered, browserKeywords) && url == "" {
		return entity.Classification{}
	}

	result := entity.Classification{
		IsBrowserTask: true,
		SubIntent:     entity.SubIntentGeneral,
		URL:           url,
	}

	if containsAny(lowered, extractKeywords) {
		result.SubIntent = entity.SubIntentExtract
		result.Selector = findSelector(message, lowered)
	}

	return result
}

// findSelector returns the first quoted substring when the message mentions
// a selector at all. The trigger word and the quoted value are matched
// independently, so quoted prose earlier in the message wins over a quoted
// selector that follows the trigger word.
func findSelector(message, lowered string) string {
	if !strings.Contains(message, "选择器") && !strings.Contains(lowered, "selector") {
		return ""
	}
	if m := quotedPattern.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
