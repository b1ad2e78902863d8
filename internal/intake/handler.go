package intake

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ijinpress/intake/internal/notifier"
	"github.com/ijinpress/intake/internal/storage"
	"github.com/ijinpress/intake/internal/submission"
	"github.com/ijinpress/intake/pkg/logger"
)

// maxBodyBytes matches the 5 MB body limit the public forms were built
// against.
const maxBodyBytes = 5 << 20

// User-visible messages. The 500 bodies are deliberately generic so the
// underlying transport error never reaches the caller.
const (
	msgInvalidJSON       = "Invalid JSON format."
	msgEmailsSent        = "Emails sent successfully!"
	msgArticleSendFailed = "Error sending email. Please try again later."
	msgContactSubmitted  = "Contact form submitted successfully!"
	msgContactFailed     = "Internal server error."
	msgListingEmailsSent = "Journal submission emails sent successfully!"
	msgSendFailed        = "Error sending email."
)

// ContactFormStore persists raw contact submissions.
type ContactFormStore interface {
	Insert(ctx context.Context, form storage.ContactForm) error
}

// EmailLogStore persists notification audit records.
type EmailLogStore interface {
	Insert(ctx context.Context, entry storage.EmailLog) error
}

// Handler serves the four intake endpoints.
type Handler struct {
	notifier   *notifier.Notifier
	contacts   ContactFormStore
	emailLogs  EmailLogStore
	adminEmail string
	log        *slog.Logger
}

// NewHandler wires the intake pipeline. adminEmail is recorded in audit
// entries alongside the submitter address.
func NewHandler(n *notifier.Notifier, contacts ContactFormStore, emailLogs EmailLogStore, adminEmail string, log *slog.Logger) *Handler {
	return &Handler{
		notifier:   n,
		contacts:   contacts,
		emailLogs:  emailLogs,
		adminEmail: adminEmail,
		log:        log,
	}
}

// SubmitJournalArticle handles POST /send-email: an article manuscript
// forwarded to a hosted journal. No audit record is kept for this kind.
func (h *Handler) SubmitJournalArticle(w http.ResponseWriter, r *http.Request) {
	var sub submission.JournalArticle
	if !h.decode(w, r, &sub) {
		return
	}
	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: err.Error()})
		return
	}

	if res := h.notifier.JournalArticle(r.Context(), sub); !res.Success {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: msgArticleSendFailed})
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: msgEmailsSent})
}

// SubmitContact handles POST /contact. The raw message is persisted before
// notification, so a record exists even when the emails fail afterwards; a
// store failure is absorbed and the notification still goes out.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub submission.Contact
	if !h.decode(w, r, &sub) {
		return
	}
	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: err.Error()})
		return
	}

	form := storage.ContactForm{
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.contacts.Insert(r.Context(), form); err != nil {
		h.log.ErrorContext(r.Context(), "failed to persist contact form",
			logger.Component("intake"), logger.Error(err))
	}

	if res := h.notifier.Contact(r.Context(), sub); !res.Success {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: msgContactFailed})
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: msgContactSubmitted})
}

// SubmitConference handles POST /conferenceemail. Every dispatch attempt,
// successful or not, leaves one email_logs record.
func (h *Handler) SubmitConference(w http.ResponseWriter, r *http.Request) {
	var sub submission.Conference
	if !h.decode(w, r, &sub) {
		return
	}
	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: err.Error()})
		return
	}

	res := h.notifier.Conference(r.Context(), sub)
	h.recordOutcome(r.Context(), storage.EmailLog{
		Type:       string(sub.Kind()),
		UserEmail:  sub.Email,
		AdminEmail: h.adminEmail,
	}, res)

	if !res.Success {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: msgSendFailed})
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: msgEmailsSent})
}

// SubmitJournalListing handles POST /journalsubmission. Audited like
// conference submissions, with the journal title carried in the record.
func (h *Handler) SubmitJournalListing(w http.ResponseWriter, r *http.Request) {
	var sub submission.JournalListing
	if !h.decode(w, r, &sub) {
		return
	}
	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: err.Error()})
		return
	}

	res := h.notifier.JournalListing(r.Context(), sub)
	h.recordOutcome(r.Context(), storage.EmailLog{
		Type:         string(sub.Kind()),
		UserEmail:    sub.Email,
		AdminEmail:   h.adminEmail,
		JournalTitle: sub.Title,
	}, res)

	if !res.Success {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: msgSendFailed})
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: msgListingEmailsSent})
}

// decode reads the JSON body into v. Any decode failure, including an
// over-limit body or trailing content after the first value, is answered
// with a 400 and the generic malformed-JSON message.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		// The body must hold exactly one JSON value.
		if trailing := dec.Decode(new(struct{})); !errors.Is(trailing, io.EOF) {
			err = errors.New("unexpected content after JSON body")
		}
	}
	if err != nil {
		h.log.WarnContext(r.Context(), "malformed request body",
			logger.Component("intake"), logger.Error(err))
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: msgInvalidJSON})
		return false
	}
	return true
}

// recordOutcome appends one audit record for the dispatch attempt. Success
// and failure records carry the same context fields; failures add the
// reason. A store failure must not mask the notification outcome, so it is
// only logged.
func (h *Handler) recordOutcome(ctx context.Context, entry storage.EmailLog, res notifier.Result) {
	entry.SentAt = time.Now().UTC()
	entry.Success = res.Success
	if !res.Success {
		entry.Error = res.FailureReason
	}
	if err := h.emailLogs.Insert(ctx, entry); err != nil {
		h.log.ErrorContext(ctx, "failed to persist email log",
			logger.Component("intake"),
			logger.Error(err),
			slog.String("type", entry.Type),
		)
	}
}
