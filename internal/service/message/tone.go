package message

import (
	"strings"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

// ApplyTone post-processes a message for the campaign's brand voice.
// "formal" swaps the casual greeting and turns exclamations into periods;
// "enthusiastic" appends an emoji. Any other voice passes through unchanged.
func ApplyTone(msg, voice string) string {
	switch voice {
	case domain.VoiceFormal:
		msg = strings.ReplaceAll(msg, "Hi ", "Dear ")
		msg = strings.ReplaceAll(msg, "!", ".")
	case domain.VoiceEnthusiastic:
		msg += " 🚀"
	}
	return msg
}
