package handlers

import (
	"frecha-bot/bot"
)

// Package-level engine instances, wired once from main.
var (
	catalog     *bot.Catalog
	responder   *bot.Responder
	leadCapture *bot.LeadCapture
)

// InitBot wires the conversational engine into the HTTP handlers.
func InitBot(r *bot.Responder, lc *bot.LeadCapture) {
	catalog = r.Catalog()
	responder = r
	leadCapture = lc
}
