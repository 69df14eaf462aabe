package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCompleter struct {
	replies []string
	err     error
	reqs    []Request
}

func (f *fakeCompleter) Complete(_ context.Context, req Request) (string, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	out := f.replies[0]
	f.replies = f.replies[1:]
	return out, nil
}

func newFakeClient(replies ...string) (*Client, *fakeCompleter) {
	f := &fakeCompleter{replies: replies}
	return NewClientWithCompleter(f, zap.NewNop()), f
}

func TestClient_MissingKeyIsCached(t *testing.T) {
	c := NewClient(Options{}, zap.NewNop())

	_, err1 := c.DefineWord(context.Background(), "budget")
	_, err2 := c.DailyQuote(context.Background(), nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err1, &cfgErr)
	assert.Same(t, err1, err2)
	assert.Equal(t, "無法使用 AI 功能，因為缺少 API 金鑰設定。", UserMessage(err2))
}

func TestClient_DefineWord(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain json",
			reply: `{"word":"budget","phonetic":"/ˈbʌdʒɪt/","definition":"a plan for money","chineseDefinition":"預算","exampleSentence":"We set a budget."}`,
			want:  "budget",
		},
		{
			name:  "fenced json",
			reply: "```json\n{\"word\":\"audit\",\"phonetic\":\"\",\"definition\":\"an inspection\",\"chineseDefinition\":\"審計\",\"exampleSentence\":\"\"}\n```",
			want:  "audit",
		},
		{
			name:  "text around object",
			reply: `Sure! {"word":"agenda","phonetic":"","definition":"list of items","chineseDefinition":"議程","exampleSentence":""} Hope this helps.`,
			want:  "agenda",
		},
		{
			name:    "missing definition",
			reply:   `{"word":"agenda","phonetic":"","definition":"","chineseDefinition":"","exampleSentence":""}`,
			wantErr: true,
		},
		{
			name:    "not json",
			reply:   "I cannot help with that",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, f := newFakeClient(tt.reply)

			stub, err := c.DefineWord(context.Background(), "x")

			if tt.wantErr {
				var shape *ShapeError
				require.ErrorAs(t, err, &shape)
				assert.Equal(t, OpDefineWord, shape.Op)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stub.Word)
			require.Len(t, f.reqs, 1)
			assert.NotNil(t, f.reqs[0].Schema)
		})
	}
}

func TestClient_WordStructureFallback(t *testing.T) {
	c, _ := newFakeClient(`{"prefix":{"part":"","meaning":""},"root":{"part":" ","meaning":"x"},"suffix":{"part":"","meaning":""}}`)

	s, err := c.WordStructure(context.Background(), "agenda")

	require.NoError(t, err)
	assert.Nil(t, s.Prefix)
	assert.Nil(t, s.Suffix)
	require.NotNil(t, s.Root)
	assert.Equal(t, "agenda", s.Root.Part)
	assert.Equal(t, "無法分析結構", s.Root.Meaning)
}

func TestClient_WordStructureKeepsValidParts(t *testing.T) {
	c, _ := newFakeClient(`{"prefix":{"part":"out","meaning":"向外"},"root":{"part":"source","meaning":"來源"},"suffix":{"part":"","meaning":""}}`)

	s, err := c.WordStructure(context.Background(), "outsource")

	require.NoError(t, err)
	require.NotNil(t, s.Prefix)
	assert.Equal(t, "out", s.Prefix.Part)
	assert.Equal(t, "source", s.Root.Part)
	assert.Nil(t, s.Suffix)
}

func TestClient_TopicPackShapeError(t *testing.T) {
	c, _ := newFakeClient(`{"title":"Meetings","chineseTitle":"會議","description":"d","words":[],"dialogue":[]}`)

	_, err := c.TopicPack(context.Background(), "Meetings", nil)

	require.Error(t, err)
	assert.Equal(t, "從 AI 收到的主題學習包格式無效。", UserMessage(err))
}

func TestClient_GroupTitleStripsQuotes(t *testing.T) {
	c, f := newFakeClient(`「商務會議」`)

	title, err := c.GroupTitle(context.Background(), []string{"A", "B"})

	require.NoError(t, err)
	assert.Equal(t, "商務會議", title)
	assert.Nil(t, f.reqs[0].Schema)
}

func TestClient_StudyPlanResetsCompletion(t *testing.T) {
	c, f := newFakeClient(`{"planTitle":"加油","tasks":[{"id":"review","title":"複習","description":"d","actionType":"flashcard","icon":"flashcard","isCompleted":true}]}`)

	plan, err := c.StudyPlan(context.Background(), PlanInput{TotalWords: 3, DueWords: []string{"audit"}})

	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.False(t, plan.Tasks[0].IsCompleted)
	assert.Contains(t, f.reqs[0].Input, "1 words due for review today: audit")
}

func TestClient_StudyPlanDuplicateTaskIDs(t *testing.T) {
	c, _ := newFakeClient(`{"planTitle":"加油","tasks":[{"id":"a","title":"","description":"","actionType":"","icon":"","isCompleted":false},{"id":"a","title":"","description":"","actionType":"","icon":"","isCompleted":false}]}`)

	_, err := c.StudyPlan(context.Background(), PlanInput{})

	var shape *ShapeError
	assert.ErrorAs(t, err, &shape)
}

func TestClient_ReadingTestAnswerIndex(t *testing.T) {
	c, _ := newFakeClient(`{"title":"t","article":"a","questions":[{"question":"q","options":["a","b"],"correctAnswerIndex":2,"explanation":"e"}],"vocabulary":[]}`)

	_, err := c.ReadingTest(context.Background())

	assert.Equal(t, "從 AI 收到的閱讀測驗格式無效。", UserMessage(err))
}

func TestClient_TransportError(t *testing.T) {
	f := &fakeCompleter{err: errors.New("connection reset")}
	c := NewClientWithCompleter(f, zap.NewNop())

	_, err := c.ExplainSentence(context.Background(), "audit", "We audit.")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "生成內容時發生錯誤。請檢查您的網路連線。", UserMessage(err))
}

func TestGenerateSchema_Strict(t *testing.T) {
	schema := generateSchema[topicPackResponse]()

	assert.Equal(t, false, schema["additionalProperties"])
	assert.ElementsMatch(t, []string{"title", "chineseTitle", "description", "words", "dialogue"}, schema["required"])

	props := schema["properties"].(map[string]any)
	items := props["words"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, false, items["additionalProperties"])
	assert.Len(t, items["required"], 5)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "從 AI 收到的每日俚語格式無效。", UserMessage(&ShapeError{Op: OpDailySlang}))
	assert.Equal(t, "從 AI 收到的格式無效。", UserMessage(&ShapeError{Op: "unknown"}))
}
