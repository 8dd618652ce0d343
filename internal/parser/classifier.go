package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// Rule files a line under Category when it mentions any of Keywords.
type Rule struct {
	Category domain.Category
	Keywords []string
}

// DefaultRules is the keyword table, checked in order. The first matching
// rule wins; lines matching nothing fall into domain.CategoryOther.
var DefaultRules = []Rule{
	{
		Category: domain.CategoryPreResearch,
		Keywords: []string{
			"预研", "调研", "探索", "原型", "技术选型", "可行性", "验证方案", "概念验证",
			"poc", "prototype", "research", "spike", "evaluate",
		},
	},
	{
		Category: domain.CategoryServiceCapability,
		Keywords: []string{
			"服务能力", "能力建设", "平台", "基础设施", "基建", "中间件", "工具链", "脚手架",
			"自动化", "监控", "告警", "部署", "运维", "性能优化", "稳定性", "流水线", "框架", "组件库",
			"infra", "platform", "pipeline", "ci", "cd", "sdk", "monitoring", "devops",
		},
	},
	{
		Category: domain.CategoryCurrentProject,
		Keywords: []string{
			"项目", "需求", "开发", "联调", "上线", "发布", "修复", "缺陷", "迭代", "版本",
			"交付", "客户", "提测", "功能",
			"bug", "feature", "release", "hotfix",
		},
	},
}

type matcher struct {
	category domain.Category
	words    []string       // matched as plain substrings
	pattern  *regexp.Regexp // ASCII keywords, matched on word boundaries
}

func (m matcher) match(lower string) bool {
	for _, w := range m.words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return m.pattern != nil && m.pattern.MatchString(lower)
}

// Classifier maps a line of work-log text to a category.
type Classifier struct {
	matchers []matcher
}

// NewClassifier builds a classifier from DefaultRules. projectNames are
// ongoing named projects; a line mentioning one is project work regardless
// of any other keyword it contains.
func NewClassifier(projectNames ...string) *Classifier {
	rules := make([]Rule, 0, len(DefaultRules)+1)
	var names []string
	for _, n := range projectNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		rules = append(rules, Rule{Category: domain.CategoryCurrentProject, Keywords: names})
	}
	rules = append(rules, DefaultRules...)
	return NewClassifierFromRules(rules)
}

// NewClassifierFromRules builds a classifier over an explicit keyword table.
func NewClassifierFromRules(rules []Rule) *Classifier {
	c := &Classifier{matchers: make([]matcher, 0, len(rules))}
	for _, r := range rules {
		m := matcher{category: r.Category}
		var ascii []string
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if isASCIIWord(kw) {
				ascii = append(ascii, regexp.QuoteMeta(kw))
			} else {
				m.words = append(m.words, kw)
			}
		}
		if len(ascii) > 0 {
			m.pattern = regexp.MustCompile(`\b(?:` + strings.Join(ascii, "|") + `)\b`)
		}
		c.matchers = append(c.matchers, m)
	}
	return c
}

// Classify returns the category for line. It never fails: text that matches
// no rule is filed as domain.CategoryOther.
func (c *Classifier) Classify(line string) domain.Category {
	lower := strings.ToLower(line)
	for _, m := range c.matchers {
		if m.match(lower) {
			return m.category
		}
	}
	return domain.CategoryOther
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
