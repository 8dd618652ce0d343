package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workbrief/internal/config"
	"github.com/alexanderramin/workbrief/internal/intelligence"
	"github.com/alexanderramin/workbrief/internal/llm"
	"github.com/alexanderramin/workbrief/internal/repository"
	"github.com/alexanderramin/workbrief/internal/service"
	"github.com/alexanderramin/workbrief/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

type memKeys struct{ key string }

func (k *memKeys) Get() (string, error) {
	if k.key == "" {
		return "", config.ErrKeyNotFound
	}
	return k.key, nil
}

func (k *memKeys) Set(key string) error { k.key = key; return nil }

func (k *memKeys) Delete() error {
	if k.key == "" {
		return config.ErrKeyNotFound
	}
	k.key = ""
	return nil
}

// testApp wires a full App backed by an in-memory DB and the mock model.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	now := func() time.Time { return testutil.FixedNow }
	reports := intelligence.NewReportService(nil, llm.Selector{Mock: llm.NewMockClient(nil)}, now)

	return &App{
		Assistant: service.NewAssistantService(nil, reports, service.AssistantConfig{}, now),
		Daily:     service.NewDailyReportService(repository.NewSQLiteDailyReportRepo(database)),
		Weekly:    service.NewWeeklyReportService(repository.NewSQLiteWeeklyReportRepo(database), now),
		OKR:       service.NewOKRReportService(repository.NewSQLiteOKRReportRepo(database)),
		Todos:     service.NewTodoService(repository.NewSQLiteTodoRepo(database), testutil.NewTestUoW(database)),
		Keys:      &memKeys{},
		Addr:      "127.0.0.1:5000",
		Now:       now,
	}
}

// executeCmd runs a cobra command with stdin and captures stdout/stderr
// with styling stripped.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func TestWeekRangeCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "week-range")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-12-08")
	assert.Contains(t, out, "2025-12-12")
}

func TestParseCmd_Stdin(t *testing.T) {
	out, err := executeCmd(t, testApp(t), testutil.SampleWeekLog, "parse")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-12-08 ~ 2025-12-12")
	assert.Contains(t, out, "当前项目工作")
}

func TestParseCmd_FileAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte(testutil.SampleWeekLog), 0o644))

	out, err := executeCmd(t, testApp(t), "", "parse", "--json", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got["blocks"], 4)
	assert.Equal(t, 15.5, got["total_hours"])
}

func TestParseCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "parse", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestGenerateWeeklyCmd_MockAndSave(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, testutil.SampleWeekLog, "generate", "weekly", "--mock", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "周报 2025-12-08 ~ 2025-12-12")
	assert.Contains(t, out, "● MOCK")
	assert.Contains(t, out, "✔ 结构检查")
	assert.Contains(t, out, "saved weekly report 2025-12-08 ~ 2025-12-12")

	saved, err := app.Weekly.Get(context.Background(), "2025-12-08", "2025-12-12")
	require.NoError(t, err)
	assert.Equal(t, llm.MockResponse("weekly_report"), saved.Content)
}

func TestGenerateWeeklyCmd_FromDaily(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Daily.Save(ctx, "2025-12-01", "完成支付项目联调")
	require.NoError(t, err)
	_, err = app.Daily.Save(ctx, "2025-12-03", "周会")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "", "generate", "weekly", "--json", "--from-daily", "--start", "2025-12-01", "--end", "2025-12-05")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["mock"], "no provider configured")
	parsed := got["parsed_data"].(map[string]any)
	assert.Len(t, parsed["blocks"], 2)
	wr := parsed["week_range"].(map[string]any)
	assert.Equal(t, "2025-12-01", wr["start_date"])
	assert.Equal(t, "2025-12-05", wr["end_date"])
}

func TestGenerateWeeklyCmd_FromDailyNeedsRange(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "generate", "weekly", "--from-daily", "--start", "2025-12-01")
	require.Error(t, err)

	_, err = executeCmd(t, testApp(t), "", "generate", "weekly", "--from-daily", "--start", "2025-12-01", "--end", "2025-12-05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no daily logs")
}

func TestGenerateWeeklyCmd_BlankInput(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "   \n", "generate", "weekly", "--mock")
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestGenerateOKRCmd_Save(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "本季度完成支付项目", "generate", "okr", "--mock", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "OKR 2026第一季度")
	assert.Contains(t, out, "saved OKR for 2025-12-12")

	latest, err := app.OKR.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-12-12", latest.CreationDate.String())
}

func TestGenerateOKRCmd_QuarterFlag(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "history", "generate", "okr", "--mock", "--json", "--quarter", "2026 Q2")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2026 Q2", got["quarter"])
}

func TestValidateCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, llm.MockResponse("weekly_report"), "validate", "weekly")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "一、当前项目工作\n随便", "validate", "weekly")
	require.Error(t, err)
	assert.Contains(t, out, "预研工作（缺失）")

	_, err = executeCmd(t, app, llm.MockResponse("okr"), "validate", "okr")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "O1：只有一个目标", "validate", "okr")
	require.Error(t, err)
}

func TestDailyCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "完成支付项目联调\n周会", "daily", "save", "2025-12-08")
	require.NoError(t, err)
	assert.Contains(t, out, "saved daily log 2025-12-08")

	path := filepath.Join(t.TempDir(), "day.txt")
	require.NoError(t, os.WriteFile(path, []byte("调研向量数据库"), 0o644))
	_, err = executeCmd(t, app, "", "daily", "save", "2025-12-10", path)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "", "daily", "show", "2025-12-08")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-12-08 周一")
	assert.Contains(t, out, "周会")

	out, err = executeCmd(t, app, "", "daily", "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "2025-12-10"), strings.Index(out, "2025-12-08"), "newest first")

	out, err = executeCmd(t, app, "", "daily", "list", "--start", "2025-12-09", "--end", "2025-12-12")
	require.NoError(t, err)
	assert.Contains(t, out, "调研向量数据库")
	assert.NotContains(t, out, "周会")

	_, err = executeCmd(t, app, "", "daily", "list", "--start", "2025-12-09")
	require.Error(t, err)

	_, err = executeCmd(t, app, "", "daily", "delete", "2025-12-08")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "", "daily", "show", "2025-12-08")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDailySaveCmd_BadDate(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "x", "daily", "save", "12/08/2025")
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestTodoCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "todo", "add", "写", "周报")
	require.NoError(t, err)
	assert.Contains(t, out, "added #1 写 周报")

	_, err = executeCmd(t, app, "", "todo", "add", "提交报销")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "", "todo", "done", "#1")
	require.NoError(t, err)
	assert.Contains(t, out, "✔")

	out, err = executeCmd(t, app, "", "todo", "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "提交报销"), strings.Index(out, "写 周报"), "open items first")

	_, err = executeCmd(t, app, "", "todo", "undo", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "", "todo", "done", "abc")
	require.Error(t, err)

	_, err = executeCmd(t, app, "", "todo", "delete", "1")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "", "todo", "delete", "1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKeyCmds(t *testing.T) {
	app := testApp(t)
	keys := app.Keys.(*memKeys)

	_, err := executeCmd(t, app, "", "key", "set", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", keys.key)

	_, err = executeCmd(t, app, "sk-from-stdin\nignored\n", "key", "set")
	require.NoError(t, err)
	assert.Equal(t, "sk-from-stdin", keys.key)

	_, err = executeCmd(t, app, "\n", "key", "set")
	require.Error(t, err)

	_, err = executeCmd(t, app, "", "key", "clear")
	require.NoError(t, err)
	assert.Empty(t, keys.key)

	out, err := executeCmd(t, app, "", "key", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "no api key stored")
}

func TestServeCmd(t *testing.T) {
	app := testApp(t)
	var gotAddr string
	app.Serve = func(ctx context.Context, addr string) error {
		gotAddr = addr
		return nil
	}

	_, err := executeCmd(t, app, "", "serve")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5000", gotAddr)

	_, err = executeCmd(t, app, "", "serve", "--addr", ":8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", gotAddr)

	app.Serve = nil
	_, err = executeCmd(t, app, "", "serve")
	require.Error(t, err)
}
