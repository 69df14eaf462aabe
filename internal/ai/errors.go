package ai

import (
	"errors"
	"fmt"
)

// ConfigError means the gateway cannot be used at all. It is cached by the
// client and returned unchanged on every later call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "ai gateway not configured: " + e.Reason
}

// ShapeError means the model answered but the JSON did not match the contract
type ShapeError struct {
	Op     string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: invalid response shape: %s", e.Op, e.Detail)
}

func shapeErr(op, format string, args ...any) error {
	return &ShapeError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// shapeMessages holds the learner-facing text per operation
var shapeMessages = map[string]string{
	OpDefineWord:      "從 AI 收到的格式無效。",
	OpGenerateWords:   "從 AI 收到的陣列格式無效。",
	OpMoreExamples:    "從 AI 收到的例句格式無效。",
	OpSimilarWord:     "從 AI 收到的相似字格式無效。",
	OpWordStructure:   "從 AI 收到的單字結構格式無效。",
	OpTopicPack:       "從 AI 收到的主題學習包格式無效。",
	OpDailySlang:      "從 AI 收到的每日俚語格式無效。",
	OpDailyGrammar:    "從 AI 收到的每日文法格式無效。",
	OpDailyQuote:      "從 AI 收到的每日名言格式無效。",
	OpReadingTest:     "從 AI 收到的閱讀測驗格式無效。",
	OpStudyPlan:       "從 AI 收到的學習計畫格式無效。",
	OpGroupTitle:      "無法從 AI 取得摘要標題。",
	OpExplainSentence: "無法從 AI 取得解釋。",
	OpWritingFeedback: "無法從 AI 取得寫作回饋。",
}

const (
	missingKeyMessage = "無法使用 AI 功能，因為缺少 API 金鑰設定。"
	genericMessage    = "生成內容時發生錯誤。請檢查您的網路連線。"
)

// UserMessage turns any gateway error into text that can be shown to the learner
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return missingKeyMessage
	}

	var shape *ShapeError
	if errors.As(err, &shape) {
		if msg, ok := shapeMessages[shape.Op]; ok {
			return msg
		}
		return shapeMessages[OpDefineWord]
	}

	return genericMessage
}
