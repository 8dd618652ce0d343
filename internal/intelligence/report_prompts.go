package intelligence

// weeklySystemPrompt frames the model as a report writer bound to the
// four-section layout.
const weeklySystemPrompt = `你是一名资深技术团队成员的周报撰写助手。
你会收到按日期整理、并已按工作类型预分类的日报记录。
你的任务是把这些零散记录提炼成一份结构清晰、措辞专业的中文周报。
只依据给定记录撰写，不得编造记录中不存在的工作内容。`

// weeklyUserTemplate renders ParsedData into the user message. Section
// headers in the output requirements must stay in sync with
// domain.AllCategories.
const weeklyUserTemplate = `请根据以下工作记录，撰写 {{.Start}} 至 {{.End}} 的工作周报。

## 按日期整理的工作记录
{{range .Blocks}}
### {{.Day}}{{if .Hours}}（{{hours .Hours}} 小时）{{end}}
{{range .Content}}- {{.}}
{{else}}（无记录）
{{end}}{{end}}{{if .TotalHours}}
合计工时：{{hours .TotalHours}} 小时
{{end}}
## 预分类结果
{{range .Sections}}
【{{.Label}}】
{{range .Lines}}- {{.}}
{{else}}（无）
{{end}}{{end}}
## 输出要求
1. 严格按以下四个一级标题及顺序输出，每个标题独占一行：
{{range .Sections}}   {{.Heading}}
{{end}}2. 每个标题下用 1. 2. 3. 编号列出要点，合并同类事项，突出结果与进展。
3. 某一类别没有内容时，保留标题并写“无”。
4. 只输出周报正文，不要添加额外说明。`

// okrSystemPrompt frames the model as an OKR planner.
const okrSystemPrompt = `你是一名擅长目标管理的技术团队 OKR 规划助手。
你会收到过往周报或 OKR 等历史材料，需要据此为下一季度制定可执行、可衡量的 OKR。
目标要聚焦，关键结果必须量化并带有明确的完成日期。`

const okrUserTemplate = `以下是历史材料：
<<<
{{.History}}
>>>

请为 {{.Quarter}} 制定 OKR。

## 输出要求
1. 设定 2-3 个目标，依次编号为 O1、O2、O3，每个目标独占一行并以编号开头，例如“O1：……”。
2. 每个目标下设 2-4 个关键结果，编号为 KR1、KR2……，每个关键结果独占一行并以编号开头。
3. 每个关键结果必须包含可量化指标（数值、百分比或数量阈值，如 ≥95%、≤2个、缩短30%），
   并包含形如 YYYY-MM-DD前 的完成日期节点，日期须落在 {{.Quarter}} 内。
4. 最后单独列出“里程碑：”，给出 M1、M2、M3 三个里程碑，每个里程碑同样带日期节点。
5. 只输出 OKR 正文，不要添加额外说明。`
