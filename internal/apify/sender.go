package apify

import (
	"context"
	"fmt"

	"github.com/ignite/linkedin-outreach/internal/config"
)

// MessageSender invokes the browser-automation actor that delivers one
// outreach message to one profile.
type MessageSender struct {
	client *Client
	cfg    config.ApifyConfig
}

// NewMessageSender creates a sender bound to the configured send actor.
func NewMessageSender(client *Client, cfg config.ApifyConfig) *MessageSender {
	return &MessageSender{client: client, cfg: cfg}
}

// SendMessage delivers one message. Credentials are checked here, per call,
// so a misconfigured deployment fails individual queue items instead of the
// whole batch. The run blocks up to the configured send wait.
func (s *MessageSender) SendMessage(ctx context.Context, profileURL, message string) error {
	switch {
	case s.cfg.Token == "" || s.cfg.SendActorID == "":
		return fmt.Errorf("APIFY_TOKEN/APIFY_ACTOR_ID not set")
	case s.cfg.LinkedInSessionCookie == "":
		return fmt.Errorf("LINKEDIN_LI_AT not set")
	}

	run, err := s.client.RunActorSync(ctx, s.cfg.SendActorID, sendInput{
		ProfileURL: profileURL,
		Message:    message,
		LiAt:       s.cfg.LinkedInSessionCookie,
	}, s.cfg.SendWait())
	if err != nil {
		return err
	}
	if !run.Succeeded() {
		return fmt.Errorf("apify status: %s", run.Status)
	}
	return nil
}
