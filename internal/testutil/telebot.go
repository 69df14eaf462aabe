package testutil

import (
	"strings"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context that records what handlers send.
// Methods it does not override panic, so tests notice unexpected calls.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Msg      *tele.Message
	Cb       *tele.Callback
	Sent     []string
	Markups  []*tele.ReplyMarkup
	Answered []*tele.CallbackResponse
}

// NewTextContext is a private chat message with text from userID
func NewTextContext(userID int64, text string) *FakeContext {
	user := &tele.User{ID: userID}
	msg := &tele.Message{Sender: user, Text: text, Chat: &tele.Chat{ID: userID}}
	if strings.HasPrefix(text, "/") {
		if _, payload, ok := strings.Cut(text, " "); ok {
			msg.Payload = strings.TrimSpace(payload)
		}
	}
	return &FakeContext{User: user, Msg: msg}
}

// NewCallbackContext is a button press; data is the payload after the unique
func NewCallbackContext(userID int64, unique, data string) *FakeContext {
	user := &tele.User{ID: userID}
	msg := &tele.Message{Sender: user, Chat: &tele.Chat{ID: userID}}
	return &FakeContext{
		User: user,
		Msg:  msg,
		Cb:   &tele.Callback{ID: "cb", Sender: user, Message: msg, Unique: unique, Data: data},
	}
}

func (f *FakeContext) Sender() *tele.User       { return f.User }
func (f *FakeContext) Message() *tele.Message   { return f.Msg }
func (f *FakeContext) Callback() *tele.Callback { return f.Cb }

func (f *FakeContext) Text() string {
	if f.Msg == nil {
		return ""
	}
	return f.Msg.Text
}

func (f *FakeContext) Data() string {
	if f.Cb != nil {
		return f.Cb.Data
	}
	return f.Text()
}

func (f *FakeContext) Args() []string {
	if f.Cb != nil {
		return strings.Split(f.Cb.Data, "|")
	}
	return strings.Fields(f.Msg.Payload)
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.record(what, opts)
	return nil
}

// Edit is recorded like Send
func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	f.record(what, opts)
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) > 0 {
		f.Answered = append(f.Answered, resp[0])
	} else {
		f.Answered = append(f.Answered, &tele.CallbackResponse{})
	}
	return nil
}

func (f *FakeContext) Notify(tele.ChatAction) error { return nil }

func (f *FakeContext) record(what interface{}, opts []interface{}) {
	switch v := what.(type) {
	case string:
		f.Sent = append(f.Sent, v)
	case *tele.Document:
		f.Sent = append(f.Sent, "document:"+v.FileName)
	default:
		f.Sent = append(f.Sent, "")
	}

	var markup *tele.ReplyMarkup
	for _, o := range opts {
		if m, ok := o.(*tele.ReplyMarkup); ok {
			markup = m
		}
	}
	f.Markups = append(f.Markups, markup)
}

// LastSent returns the text of the most recent message, or ""
func (f *FakeContext) LastSent() string {
	if len(f.Sent) == 0 {
		return ""
	}
	return f.Sent[len(f.Sent)-1]
}
