package intelligence

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workbrief/internal/parser"
)

var testNow = time.Date(2025, 12, 12, 18, 0, 0, 0, time.UTC)

const sampleLog = `本周计划同步
20251208 8h
- 完成支付项目联调
2025-12-10 7.5h
1. 搭建监控告警平台
2. 调研向量数据库选型`

func TestBuildWeeklyPrompt_RendersBlocksAndSections(t *testing.T) {
	data := parser.New(nil).Parse(sampleLog, testNow)

	p, err := BuildWeeklyPrompt(data)
	require.NoError(t, err)

	assert.Equal(t, weeklySystemPrompt, p.System)
	assert.Contains(t, p.User, "2025-12-08 至 2025-12-10")
	assert.Contains(t, p.User, "### 今天\n- 本周计划同步")
	assert.Contains(t, p.User, "### 2025-12-08 周一（8 小时）\n- 完成支付项目联调")
	assert.Contains(t, p.User, "### 2025-12-10 周三（7.5 小时）")
	assert.Contains(t, p.User, "合计工时：15.5 小时")
	assert.Contains(t, p.User, "【服务能力建设】\n- 搭建监控告警平台")
	assert.Contains(t, p.User, "【预研工作】\n- 调研向量数据库选型")
}

func TestBuildWeeklyPrompt_HeadingsInReportOrder(t *testing.T) {
	p, err := BuildWeeklyPrompt(parser.New(nil).Parse("周会", testNow))
	require.NoError(t, err)

	last := -1
	for _, h := range []string{"一、当前项目工作", "二、服务能力建设", "三、预研工作", "四、其他事务性工作"} {
		idx := strings.Index(p.User, h)
		require.GreaterOrEqual(t, idx, 0, "heading %s missing", h)
		assert.Greater(t, idx, last, "heading %s out of order", h)
		last = idx
	}
}

func TestBuildWeeklyPrompt_EmptyCategoryAndNoHours(t *testing.T) {
	p, err := BuildWeeklyPrompt(parser.New(nil).Parse("2025-12-09\n- 周会", testNow))
	require.NoError(t, err)

	assert.Contains(t, p.User, "【当前项目工作】\n（无）")
	assert.Contains(t, p.User, "### 2025-12-09 周二\n- 周会")
	assert.NotContains(t, p.User, "合计工时")
}

func TestBuildOKRPrompt(t *testing.T) {
	p, err := BuildOKRPrompt("\n  上季度完成支付项目上线  \n", "2027第一季度")
	require.NoError(t, err)

	assert.Equal(t, okrSystemPrompt, p.System)
	assert.Contains(t, p.User, "<<<\n上季度完成支付项目上线\n>>>")
	assert.Contains(t, p.User, "请为 2027第一季度 制定 OKR")
	assert.Contains(t, p.User, "YYYY-MM-DD前")
	assert.Contains(t, p.User, "M1、M2、M3")
}

func TestNextQuarter(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), "2026第二季度"},
		{time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), "2026第三季度"},
		{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "2026第四季度"},
		{time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), "2027第一季度"},
		{time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC), "2027第一季度"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextQuarter(tc.now), tc.now.Format("2006-01-02"))
	}
}

func TestSectionHeading(t *testing.T) {
	assert.Equal(t, "一、当前项目工作", SectionHeading(0))
	assert.Equal(t, "四、其他事务性工作", SectionHeading(3))
}
