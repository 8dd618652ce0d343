package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workbrief/internal/domain"
)

func TestMockClient_DeterministicPerTask(t *testing.T) {
	var events []CallEvent
	m := NewMockClient(&captureObserver{fn: func(e CallEvent) { events = append(events, e) }})

	first, err := m.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "a"})
	require.NoError(t, err)
	second, err := m.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "b"})
	require.NoError(t, err)
	okr, err := m.Complete(context.Background(), CompletionRequest{Task: domain.TaskOKR})
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.NotEqual(t, first.Text, okr.Text)
	assert.True(t, first.Mock)
	assert.Equal(t, MockModel, first.Model)
	assert.Contains(t, okr.Text, "O1")
	require.Len(t, events, 3)
	assert.True(t, events[2].Mock)
	assert.Equal(t, domain.TaskOKR, events[2].Task)
}

func TestSelector_Pick(t *testing.T) {
	realClient := NewOpenAIClient(testConfig("http://127.0.0.1:1"), nil)
	mock := NewMockClient(nil)

	cases := []struct {
		name       string
		configured bool
		wantMock   bool
		expectMock bool
	}{
		{"configured, real requested", true, false, false},
		{"configured, mock requested", true, true, true},
		{"unconfigured forces mock", false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Selector{Real: realClient, Mock: mock, Configured: tc.configured}
			c, isMock := s.Pick(tc.wantMock)
			assert.Equal(t, tc.expectMock, isMock)
			if tc.expectMock {
				assert.Same(t, mock, c)
			} else {
				assert.Same(t, realClient, c)
			}
		})
	}
}
