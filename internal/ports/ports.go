package ports

import (
	"context"
	"time"

	"MarketBrief/internal/domain"
)

// FeedSource pulls raw candidate records from a single feed address.
type FeedSource interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.RawItem, error)
}

// TweetSource retrieves recent posts for a list of handles.
type TweetSource interface {
	Fetch(ctx context.Context, handles []string) ([]domain.Tweet, error)
}

// Notifier pushes the rendered digest to a chat channel (Telegram, etc.).
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Mailer delivers the digest as a multipart e-mail.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody, textBody string) error
}

// Scheduler controls when digest runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
