package middleware

import (
	"errors"
	"strings"

	"vocabdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	passwordPrompt = "你好！這是私人的多益單字機器人，請輸入密碼："
	wrongPassword  = "密碼錯誤。"
	ownerTaken     = "這個機器人已經有主人了。"
	internalError  = "發生錯誤，請稍後再試。"
)

// AuthMiddleware lets only the owner through. An unauthorized text message
// is treated as a password attempt; the right password makes the sender the
// owner and runs onAuthorized.
func AuthMiddleware(authService *service.AuthService, onAuthorized tele.HandlerFunc, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}
			userID := sender.ID

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(internalError)
			}
			if authorized {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: passwordPrompt, ShowAlert: true})
			}

			text := strings.TrimSpace(c.Text())
			if text == "" || strings.HasPrefix(text, "/") {
				return c.Send(passwordPrompt)
			}
			if !authService.CheckPassword(text) {
				logger.Warn("Wrong password", zap.Int64("user_id", userID))
				return c.Send(wrongPassword)
			}

			if err := authService.AuthorizeUser(userID); err != nil {
				if errors.Is(err, service.ErrOwnerTaken) {
					logger.Warn("Second user tried to claim the bot", zap.Int64("user_id", userID))
					return c.Send(ownerTaken)
				}
				logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send(internalError)
			}

			logger.Info("User authorized", zap.Int64("user_id", userID))
			return onAuthorized(c)
		}
	}
}
