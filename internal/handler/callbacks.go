package handler

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// editFailed decides what to do after c.Edit failed on a callback. It
// reports true when the caller should send the text as a new message.
func (h *Handler) editFailed(c tele.Context, err error) bool {
	if errors.Is(err, tele.ErrSameMessageContent) || strings.Contains(err.Error(), "message is not modified") {
		// a double tap rendered the same screen twice
		h.logger.Debug("Edit skipped, content unchanged", zap.Int64("user_id", c.Sender().ID))
		_ = c.Respond()
		return false
	}

	h.logger.Warn("Edit failed, sending new message",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return true
}

// handleCallback handles callbacks no registered button claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// telebot prefixes unclaimed data with \f
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Unclaimed callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch {
	case strings.HasPrefix(data, "wpage_"):
		return h.showWordsPage(c, pageNumber(data, "wpage_"))
	case strings.HasPrefix(data, "dpage_"):
		return h.showDaysPage(c, pageNumber(data, "dpage_"))
	case data == "main_menu" || data == "cancel":
		return h.handleCancel(c)
	}

	h.logger.Warn("Unknown callback data",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// pageNumber parses the page from data, defaulting to the first page
func pageNumber(data, prefix string) int {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
