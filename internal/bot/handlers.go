package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/skrey/draftbot/internal/service"
)

type Handler struct {
	draftService *service.DraftService
}

func NewHandler(draftService *service.DraftService) *Handler {
	return &Handler{draftService: draftService}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())

	switch command {
	case "start":
		msg.Text = "Draft session is live. Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/draft <player> - Draft a player to your team\n/take <player> - Mark a player as drafted by an opponent\n/top [n] - Show top available players by marginal value\n/roster - Show your roster and win probabilities\n/cats - Show top players by category need\n/search <term> - Search available players"
	case "draft":
		h.handleDraft(&msg, args)
	case "take":
		h.handleTake(&msg, args)
	case "top":
		h.handleTop(&msg, args)
	case "roster":
		msg.Text = asCode(h.draftService.RosterSummary())
		msg.ParseMode = tgbotapi.ModeMarkdown
	case "cats":
		msg.Text = asCode(h.draftService.CategoryNeeds())
		msg.ParseMode = tgbotapi.ModeMarkdown
	case "search":
		h.handleSearch(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleDraft(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /draft <player name>"
		return
	}
	result, err := h.draftService.Draft(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error drafting player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleTake(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /take <player name>"
		return
	}
	result, err := h.draftService.Take(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error marking player taken: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleTop(msg *tgbotapi.MessageConfig, args string) {
	n := service.DefaultTopN
	if args != "" {
		parsed, err := strconv.Atoi(args)
		if err != nil || parsed <= 0 {
			msg.Text = "Usage: /top [n]"
			return
		}
		n = parsed
	}
	msg.Text = asCode(h.draftService.TopAvailable(n))
	msg.ParseMode = tgbotapi.ModeMarkdown
}

func (h *Handler) handleSearch(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a search term. Usage: /search <term>"
		return
	}
	msg.Text = asCode(h.draftService.Search(args))
	msg.ParseMode = tgbotapi.ModeMarkdown
}

// asCode wraps fixed-width reports so Telegram keeps their alignment.
func asCode(report string) string {
	return "```\n" + report + "\n```"
}
