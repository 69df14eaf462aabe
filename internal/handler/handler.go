package handler

import (
	"context"
	"errors"
	"sync"

	"vocabdeck/internal/ai"
	"vocabdeck/internal/app"
	"vocabdeck/internal/domain"
	"vocabdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	ctx    context.Context
	bot    *tele.Bot
	svc    *app.App
	logger *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	sessions   map[int64]*service.ReviewSession
	sessionMux sync.Mutex

	// Per-user locks so concurrent taps on review buttons run one at a time
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance. ctx bounds every AI call.
func NewHandler(ctx context.Context, bot *tele.Bot, svc *app.App, logger *zap.Logger) *Handler {
	return &Handler{
		ctx:      ctx,
		bot:      bot,
		svc:      svc,
		logger:   logger,
		states:   make(map[int64]*domain.StateData),
		sessions:      make(map[int64]*service.ReviewSession),
		callbackLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.Start)
	h.bot.Handle("/review", h.handleReview)
	h.bot.Handle("/add", h.handleAddPrompt)
	h.bot.Handle("/words", h.handleWords)
	h.bot.Handle("/tags", h.handleTags)
	h.bot.Handle("/generate", h.handleGenerate)
	h.bot.Handle("/daily", h.handleDailyWord)
	h.bot.Handle("/grammar", h.handleGrammar)
	h.bot.Handle("/quote", h.handleQuote)
	h.bot.Handle("/plan", h.handlePlan)
	h.bot.Handle("/reading", h.handleReading)
	h.bot.Handle("/topic", h.handleTopic)
	h.bot.Handle("/packs", h.handlePacks)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/export", h.handleExport)

	// Text messages and backup uploads
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnReview, h.handleReview)
	h.bot.Handle(&btnReveal, h.handleReveal)
	h.bot.Handle(&btnRate, h.handleRate)
	h.bot.Handle(&btnAddWord, h.handleAddPrompt)
	h.bot.Handle(&btnWords, h.handleWords)
	h.bot.Handle(&btnWord, h.handleWordDetail)
	h.bot.Handle(&btnExplain, h.handleExplain)
	h.bot.Handle(&btnSimilar, h.handleSimilar)
	h.bot.Handle(&btnStructure, h.handleStructure)
	h.bot.Handle(&btnMoreExamples, h.handleMoreExamples)
	h.bot.Handle(&btnWrite, h.handleWritePrompt)
	h.bot.Handle(&btnTag, h.handleTagPrompt)
	h.bot.Handle(&btnUntag, h.handleUntag)
	h.bot.Handle(&btnTagged, h.handleTagged)
	h.bot.Handle(&btnDaily, h.handleDailyWord)
	h.bot.Handle(&btnGrammar, h.handleGrammar)
	h.bot.Handle(&btnGrammarAnswer, h.handleGrammarAnswer)
	h.bot.Handle(&btnQuote, h.handleQuote)
	h.bot.Handle(&btnPlan, h.handlePlan)
	h.bot.Handle(&btnTask, h.handleTask)
	h.bot.Handle(&btnReading, h.handleReading)
	h.bot.Handle(&btnReadingAnswer, h.handleReadingAnswer)
	h.bot.Handle(&btnTopics, h.handleTopic)
	h.bot.Handle(&btnSuggested, h.handleSuggestedTopic)
	h.bot.Handle(&btnPack, h.handlePackDetail)
	h.bot.Handle(&btnAddPack, h.handleAddPackWords)
	h.bot.Handle(&btnDeletePack, h.handleDeletePack)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.Start)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

func (h *Handler) session(userID int64) (*service.ReviewSession, bool) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	s, ok := h.sessions[userID]
	return s, ok
}

func (h *Handler) setSession(userID int64, s *service.ReviewSession) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	if s == nil {
		delete(h.sessions, userID)
		return
	}
	h.sessions[userID] = s
}

// lockUser serialises callbacks of one user. Call the returned func to release.
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	h.callbackMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// userMessage turns any service error into the text shown to the learner
func userMessage(err error) string {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.UserMessage()
	case errors.Is(err, service.ErrWordNotFound):
		return "找不到這個單字。"
	default:
		return ai.UserMessage(err)
	}
}

// reply edits the message behind a callback, or sends a new one for commands
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if !h.editFailed(c, err) {
				return nil
			}
			return c.Send(text, markup)
		}
		// may already be answered by working()
		if err := c.Respond(); err != nil {
			h.logger.Debug("Callback already answered", zap.Error(err))
		}
		return nil
	}
	return c.Send(text, markup)
}

// fail reports err inline and keeps the conversation going
func (h *Handler) fail(c tele.Context, op string, err error) error {
	h.logger.Error("Operation failed",
		zap.String("op", op),
		zap.Int64("user_id", c.Sender().ID),
		zap.Error(err),
	)
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return c.Send("⚠️ "+userMessage(err), backMarkup())
}

// working shows the typing indicator while content is generated
func (h *Handler) working(c tele.Context) {
	if c.Callback() != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: "生成中…"})
	}
	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send typing action", zap.Error(err))
	}
}
