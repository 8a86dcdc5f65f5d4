// Package encourage maps a call outcome and the day's progress toward its
// target into the dashboard's encouragement message. Pure and stateless.
package encourage

import (
	"fmt"

	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// Message kinds.
const (
	KindRampage  = "rampage"
	KindSuccess  = "success"
	KindFollowup = "followup"
	KindRetry    = "retry"
)

// Message is the user-facing encouragement payload.
type Message struct {
	Text  string `json:"text"`
	Kind  string `json:"type"`
	Emoji string `json:"emoji"`
}

// For returns the message for an outcome given the day's successful count and
// target. "Rampage" fires when a successful call leaves exactly one to go.
func For(outcome string, successfulCount, target int) Message {
	remaining := target - successfulCount

	switch outcome {
	case store.OutcomeA, store.OutcomeB, store.OutcomeC:
		if remaining == 1 {
			return Message{
				Text:  "You're on Rampage, let's get it done!",
				Kind:  KindRampage,
				Emoji: "⚡🔥",
			}
		}
		if remaining <= 0 {
			return Message{
				Text:  "Target achieved! Keep the momentum going!",
				Kind:  KindSuccess,
				Emoji: "🎉🏆",
			}
		}
		return Message{
			Text:  fmt.Sprintf("Great, %d to go!", remaining),
			Kind:  KindSuccess,
			Emoji: "🎉",
		}
	case store.OutcomeNA:
		return Message{
			Text:  "Call this guy next time, let's go for next!",
			Kind:  KindFollowup,
			Emoji: "🔥",
		}
	default: // DNP
		return Message{
			Text:  "Someone's waiting for your call. Let's reach till there!",
			Kind:  KindRetry,
			Emoji: "🔥🔥",
		}
	}
}
