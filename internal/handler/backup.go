package handler

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Backups are a few hundred kilobytes at most
const maxBackupSize = 10 << 20

// handleExport sends every tracked key as a JSON document
func (h *Handler) handleExport(c tele.Context) error {
	data, name, err := h.svc.Backup.Export(h.svc.Calendar.Today())
	if err != nil {
		return h.fail(c, "export", err)
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: name,
		MIME:     "application/json",
		Caption:  "💾 備份檔案，傳回給我即可還原。",
	}
	h.logger.Info("Backup exported", zap.String("file", name), zap.Int("bytes", len(data)))
	return c.Send(doc)
}

// handleDocument imports an uploaded backup and reloads every service
func (h *Handler) handleDocument(c tele.Context) error {
	doc := c.Message().Document
	if doc == nil || !strings.HasSuffix(strings.ToLower(doc.FileName), ".json") {
		return c.Send("請上傳 .json 備份檔案。")
	}
	if doc.FileSize > maxBackupSize {
		return c.Send("檔案太大了。")
	}

	rc, err := h.bot.File(&doc.File)
	if err != nil {
		return h.fail(c, "download_backup", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxBackupSize))
	if err != nil {
		return h.fail(c, "download_backup", err)
	}

	return h.importBackup(c, data)
}

func (h *Handler) importBackup(c tele.Context, data []byte) error {
	report, err := h.svc.Backup.Import(data)
	if len(report.Written) > 0 {
		// the words under review may be gone
		h.setSession(c.Sender().ID, nil)
	}
	if err != nil {
		return h.fail(c, "import", err)
	}

	text := fmt.Sprintf("✅ 匯入成功！\n\n已還原 %d 項資料，單字共 %d 個。", len(report.Written), h.svc.Vocabulary.Count())
	if len(report.Skipped) > 0 {
		text += fmt.Sprintf("\n略過 %d 項格式不正確的資料。", len(report.Skipped))
	}
	return c.Send(text, mainMenuMarkup())
}
