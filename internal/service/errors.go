package service

import (
	"errors"
	"strings"
)

// ErrWordNotFound is returned by enrichment operations on an unknown id
var ErrWordNotFound = errors.New("word not found")

// ValidationError rejects an import before anything is written
type ValidationError struct {
	Reason  string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "invalid backup: missing keys " + strings.Join(e.Missing, ", ")
	}
	return "invalid backup: " + e.Reason
}

// UserMessage returns the text shown for a validation error
func (e *ValidationError) UserMessage() string {
	if len(e.Missing) > 0 {
		return "匯入失敗：備份檔案缺少必要的資料。"
	}
	return "匯入失敗：檔案格式無效。"
}
