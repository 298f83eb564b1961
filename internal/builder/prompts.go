package builder

import (
	"fmt"

	"github.com/avezina/cadence/internal/domain"
)

// TopicHint steers handle suggestions toward the account's niche.
const TopicHint = "nature"

// FallbackHandle is substituted when handle generation fails.
const FallbackHandle = "@naturedaily"

// DefaultLink is the target URL for generated actions; manual edits
// replace it with a real one.
const DefaultLink = "https://instagram.com/example"

func handlePrompt() string {
	return fmt.Sprintf("Suggest a relevant Instagram account handle related to %s. Reply with the handle only.", TopicHint)
}

// contentPrompt returns the type-specific instruction for generating an
// action's textual payload.
func contentPrompt(t domain.ActionType) string {
	switch t {
	case domain.ActionPostPost:
		return "Write a short, engaging Instagram caption for a nature photo post. One or two sentences, no hashtag walls."
	case domain.ActionPostStory:
		return "Write a single casual sentence to overlay on an Instagram story about nature."
	case domain.ActionReplyComment:
		return "Write a brief, friendly reply to a comment on a nature photo. One sentence."
	case domain.ActionSendDM:
		return "Write a short, polite opening direct message to a nature photography account."
	case domain.ActionReplyDM:
		return "Write a short, warm reply to a direct message from a follower."
	default:
		return fmt.Sprintf("Generate a creative Instagram %s message about nature. Keep it short.", t.Label())
	}
}
