package llm

import (
	"context"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// MockModel is the model name reported by MockClient.
const MockModel = "mock"

const mockWeeklyReport = `一、当前项目工作
1. 推进核心业务项目的开发与联调，按计划完成本周迭代目标。
2. 跟进线上问题修复，保障版本按期发布。

二、服务能力建设
1. 完善监控告警与部署流水线，提升服务稳定性。

三、预研工作
1. 围绕新技术方向开展调研，输出阶段性结论与选型建议。

四、其他事务性工作
1. 参加部门例会，同步项目进展并处理日常事务。`

const mockOKR = `O1：保障核心业务项目按期高质量交付
KR1：2027-02-28前完成核心模块开发与联调，需求按期交付率≥95%
KR2：2027-03-31前完成版本上线，线上严重缺陷数≤2个

O2：提升服务能力与研发效率
KR1：2027-03-15前完成监控告警平台建设，告警覆盖率达到90%
KR2：2027-03-31前将部署流水线平均耗时缩短30%

里程碑：
M1：2027-01-31前完成需求评审与技术方案设计
M2：2027-02-28前完成核心功能开发与联调
M3：2027-03-31前完成上线与复盘`

// MockClient returns a fixed, structurally valid answer per task without
// touching the network.
type MockClient struct {
	observer Observer
}

// NewMockClient creates a MockClient. A nil observer discards events.
func NewMockClient(observer Observer) *MockClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &MockClient{observer: observer}
}

func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	start := time.Now()
	text := MockResponse(req.Task)
	latency := time.Since(start)
	m.observer.OnCallComplete(CallEvent{
		Task:    req.Task,
		Model:   MockModel,
		Latency: latency,
		Mock:    true,
		Success: true,
	})
	return &Completion{Text: text, Model: MockModel, Latency: latency, Mock: true}, nil
}

// MockResponse returns the canned answer for task.
func MockResponse(task domain.Task) string {
	if task == domain.TaskOKR {
		return mockOKR
	}
	return mockWeeklyReport
}

// Selector picks the client for a call: the mock when the caller asks for
// it or when no real provider is configured.
type Selector struct {
	Real       Client
	Mock       Client
	Configured bool
}

// Pick returns the client to use and whether it is the mock.
func (s Selector) Pick(wantMock bool) (Client, bool) {
	if wantMock || !s.Configured || s.Real == nil {
		return s.Mock, true
	}
	return s.Real, false
}
