package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijinpress/intake/internal/submission"
	"github.com/ijinpress/intake/pkg/async"
	"github.com/ijinpress/intake/pkg/email"
	"github.com/ijinpress/intake/pkg/logger"
)

// defaultSendTimeout bounds a single transport call when the config leaves
// the timeout unset.
const defaultSendTimeout = 15 * time.Second

// Result is the outcome of one notification attempt. It covers both emails:
// Success is true only when the user and admin messages were both delivered
// to the transport.
type Result struct {
	Success       bool
	FailureReason string
}

// Notifier dispatches submission notifications through an EmailSender.
type Notifier struct {
	sender        email.EmailSender
	adminEmail    string
	sendTimeout   time.Duration
	retryAttempts int
	log           *slog.Logger
}

// New creates a Notifier. The admin address, per-send timeout and retry
// budget come from the email configuration.
func New(sender email.EmailSender, cfg email.Config, log *slog.Logger) *Notifier {
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	retries := cfg.SendRetryAttempts
	if retries < 0 {
		retries = 0
	}
	return &Notifier{
		sender:        sender,
		adminEmail:    cfg.AdminEmail,
		sendTimeout:   timeout,
		retryAttempts: retries,
		log:           log,
	}
}

// JournalArticle notifies about an article manuscript submission.
func (n *Notifier) JournalArticle(ctx context.Context, sub submission.JournalArticle) Result {
	user, admin := n.journalArticleEmails(sub)
	return n.dispatch(ctx, user, admin)
}

// Contact notifies about a contact form message.
func (n *Notifier) Contact(ctx context.Context, sub submission.Contact) Result {
	user, admin := n.contactEmails(sub)
	return n.dispatch(ctx, user, admin)
}

// Conference notifies about a conference listing proposal.
func (n *Notifier) Conference(ctx context.Context, sub submission.Conference) Result {
	user, admin := n.conferenceEmails(sub)
	return n.dispatch(ctx, user, admin)
}

// JournalListing notifies about a journal listing request.
func (n *Notifier) JournalListing(ctx context.Context, sub submission.JournalListing) Result {
	user, admin := n.journalListingEmails(sub)
	return n.dispatch(ctx, user, admin)
}

// dispatch fans out the two sends and joins on both unconditionally: a
// failed leg never cancels the other, so the transport is always attempted
// for both recipients before the outcome is decided.
func (n *Notifier) dispatch(ctx context.Context, user, admin email.SendEmailParams) Result {
	userFuture := async.Async(ctx, user, n.send)
	adminFuture := async.Async(ctx, admin, n.send)

	_, userErr := userFuture.Await()
	_, adminErr := adminFuture.Await()

	err := userErr
	if err == nil {
		err = adminErr
	}
	if err != nil {
		n.log.ErrorContext(ctx, "email dispatch failed",
			logger.Component("notifier"),
			logger.Error(err),
			slog.Bool("user_send_failed", userErr != nil),
			slog.Bool("admin_send_failed", adminErr != nil),
		)
		return Result{Success: false, FailureReason: err.Error()}
	}
	return Result{Success: true}
}

// send performs one transport call per attempt, each under its own bounded
// deadline, until it succeeds or the retry budget is spent.
func (n *Notifier) send(ctx context.Context, params email.SendEmailParams) (struct{}, error) {
	var err error
	for attempt := 0; attempt <= n.retryAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, n.sendTimeout)
		err = n.sender.SendEmail(sendCtx, params)
		cancel()
		if err == nil {
			return struct{}{}, nil
		}
	}
	return struct{}{}, err
}
