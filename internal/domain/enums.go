package domain

type ActionType string

const (
	ActionCreateComment ActionType = "create_comment"
	ActionReplyComment  ActionType = "reply_comment"
	ActionLikePost      ActionType = "like_post"
	ActionPostPost      ActionType = "post_post"
	ActionPostStory     ActionType = "post_story"
	ActionLikeComment   ActionType = "like_comment"
	ActionSendDM        ActionType = "send_dm"
	ActionReplyDM       ActionType = "reply_dm"
	ActionViewStory     ActionType = "view_story"
)

// AllActionTypes is the canonical ordering used when iterating a
// generation request, so plan generation stays deterministic for a
// given random seed.
var AllActionTypes = []ActionType{
	ActionCreateComment,
	ActionReplyComment,
	ActionLikePost,
	ActionPostPost,
	ActionPostStory,
	ActionLikeComment,
	ActionSendDM,
	ActionReplyDM,
	ActionViewStory,
}

// ValidActionTypes is the set of accepted action type strings.
var ValidActionTypes = map[string]bool{
	"create_comment": true, "reply_comment": true, "like_post": true,
	"post_post": true, "post_story": true, "like_comment": true,
	"send_dm": true, "reply_dm": true, "view_story": true,
}

// RequiresContent reports whether the type carries a textual payload.
// Likes and story views are pure interactions with nothing to say.
func (t ActionType) RequiresContent() bool {
	switch t {
	case ActionLikePost, ActionLikeComment, ActionViewStory:
		return false
	}
	return true
}

// Label returns the human-readable form, e.g. "create comment".
func (t ActionType) Label() string {
	out := []byte(t)
	for i := range out {
		if out[i] == '_' {
			out[i] = ' '
		}
	}
	return string(out)
}
