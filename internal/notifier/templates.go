package notifier

import (
	"fmt"
	"strings"

	"github.com/ijinpress/intake/internal/submission"
	"github.com/ijinpress/intake/pkg/email"
	"github.com/ijinpress/intake/pkg/sanitizer"
)

// Every user-supplied value is passed through the sanitizer before it is
// interpolated into a body, including addresses: the raw address goes only
// into the envelope, never into HTML.

const signature = `<p>With Regards,</p>
<p>IJIN Team</p>`

// card wraps body content in the shared boxed layout used by the richer
// notification emails.
func card(content string) string {
	return `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">` +
		content + `</div>`
}

func tableRow(label, value string) string {
	return fmt.Sprintf(`<tr>
<td style="padding: 8px; border: 1px solid #ddd;"><strong>%s</strong></td>
<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
</tr>`, label, value)
}

func table(rows ...string) string {
	return `<table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">` +
		strings.Join(rows, "\n") + `</table>`
}

func descriptionBox(value string) string {
	return fmt.Sprintf(`<div style="border: 1px solid #ddd; padding: 10px; margin-bottom: 20px;">
<strong>Description:</strong>
<div>%s</div>
</div>`, value)
}

func (n *Notifier) journalArticleEmails(sub submission.JournalArticle) (user, admin email.SendEmailParams) {
	user = email.SendEmailParams{
		SendTo:  sub.Email,
		Subject: "Thank You for Your Submission",
		Tag:     "journal-article",
		BodyHTML: fmt.Sprintf(`<h2>Thank You for Your Submission!</h2>
<p>We have received your journal submission. Your submitted article has been forwarded to the respective journal and they will get back to you shortly.</p>
<p><strong>Abstract:</strong></p>
<p>%s</p>
%s`, sanitizer.HTML(sub.Abstract), signature),
	}

	admin = email.SendEmailParams{
		SendTo:  n.adminEmail,
		Subject: "New Journal Submission Received",
		Tag:     "journal-article",
		BodyHTML: fmt.Sprintf(`<h2>New Journal Submission</h2>
<p><strong>Journal Name:</strong> %s</p>
<p><strong>Title:</strong> %s</p>
<p><strong>Name:</strong> %s</p>
<p><strong>User Email:</strong> %s</p>
<p><strong>Abstract:</strong></p>
<p>%s</p>`,
			sanitizer.HTML(sub.JournalName),
			sanitizer.HTML(sub.Title),
			sanitizer.HTML(sub.Name),
			sanitizer.HTML(sub.Email),
			sanitizer.HTML(sub.Abstract)),
	}
	return user, admin
}

func (n *Notifier) contactEmails(sub submission.Contact) (user, admin email.SendEmailParams) {
	user = email.SendEmailParams{
		SendTo:  sub.Email,
		Subject: "Thank You for Contacting Us!",
		Tag:     "contact-form",
		BodyHTML: fmt.Sprintf(`<p>Hi %s, we have received your message and will get back to you soon.</p>`,
			sanitizer.HTML(sub.Name)),
	}

	admin = email.SendEmailParams{
		SendTo:  n.adminEmail,
		Subject: "New Contact Form: " + sanitizer.HTML(sub.Subject),
		Tag:     "contact-form",
		BodyHTML: fmt.Sprintf(`<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
			sanitizer.HTML(sub.Name),
			sanitizer.HTML(sub.Email),
			sanitizer.HTML(sub.Message)),
	}
	return user, admin
}

func (n *Notifier) conferenceEmails(sub submission.Conference) (user, admin email.SendEmailParams) {
	user = email.SendEmailParams{
		SendTo:  sub.Email,
		Subject: "Thank You for Your Conference Submission",
		Tag:     "conference",
		BodyHTML: card(fmt.Sprintf(`<h2 style="color: #333;">Thank You for Your Conference Submission</h2>
<p>Dear %s,</p>
<p>We have received your conference/symposium submission for "%s". Your submission has been forwarded to our IJIN team for review.</p>
<p>We will get back to you shortly with further information.</p>
%s`, sanitizer.HTML(sub.ContactPerson), sanitizer.HTML(sub.Title), signature)),
	}

	admin = email.SendEmailParams{
		SendTo:  n.adminEmail,
		Subject: "New Conference Submission: " + sanitizer.HTML(sub.Title),
		Tag:     "conference",
		BodyHTML: card(`<h2 style="color: #333;">New Conference Submission</h2>
<p>A new conference/symposium submission has been received:</p>` +
			table(
				tableRow("Conference Title", sanitizer.HTML(sub.Title)),
				tableRow("Organizer", sanitizer.HTML(sub.Organizer)),
				tableRow("Venue", sanitizer.HTML(sub.Venue)),
				tableRow("Date", sanitizer.HTML(sub.Date)),
				tableRow("Contact Person", sanitizer.HTML(sub.ContactPerson)),
				tableRow("Email", sanitizer.HTML(sub.Email)),
				tableRow("Country", sanitizer.HTML(sub.Country)),
				tableRow("Language", sanitizer.HTML(sub.Language)),
			) +
			descriptionBox(sanitizer.HTML(sub.Description))),
	}
	return user, admin
}

func (n *Notifier) journalListingEmails(sub submission.JournalListing) (user, admin email.SendEmailParams) {
	user = email.SendEmailParams{
		SendTo:  sub.Email,
		Subject: "Thank You for Your Journal Submission",
		Tag:     "journal-listing",
		BodyHTML: card(fmt.Sprintf(`<h2 style="color: #333;">Thank You for Your Journal Submission</h2>
<p>Dear %s,</p>
<p>We have received your journal submission for "%s". Your submission has been forwarded to our IJIN team for review.</p>
<p>We will get back to you shortly with further information.</p>
%s`, sanitizer.HTMLOr(sub.ChiefEditor, "Journal Editor"), sanitizer.HTML(sub.Title), signature)),
	}

	admin = email.SendEmailParams{
		SendTo:  n.adminEmail,
		Subject: "New Journal Submission: " + sanitizer.HTML(sub.Title),
		Tag:     "journal-listing",
		BodyHTML: card(`<h2 style="color: #333;">New Journal Submission</h2>
<p>A new journal submission has been received:</p>` +
			table(
				tableRow("Journal Title", sanitizer.HTML(sub.Title)),
				tableRow("Abbreviation", sanitizer.HTMLOr(sub.Abbreviation, "-")),
				tableRow("Journal URL", sanitizer.HTMLOr(sub.URL, "-")),
				tableRow("ISSN (Print)", sanitizer.HTMLOr(sub.ISSNPrint, "-")),
				tableRow("ISSN (Online)", sanitizer.HTMLOr(sub.ISSNOnline, "-")),
				tableRow("Publisher", sanitizer.HTMLOr(sub.Publisher, "-")),
				tableRow("Discipline", sanitizer.HTMLOr(sub.Discipline, "-")),
				tableRow("Chief Editor", sanitizer.HTMLOr(sub.ChiefEditor, "-")),
				tableRow("Email", sanitizer.HTML(sub.Email)),
				tableRow("Country", sanitizer.HTMLOr(sub.Country, "-")),
				tableRow("Language", sanitizer.HTMLOr(sub.Language, "-")),
				tableRow("Frequency", sanitizer.HTMLOr(sub.Frequency, "-")),
				tableRow("Year of Starting", sanitizer.HTMLOr(sub.YearOfStarting, "-")),
				tableRow("License Type", sanitizer.HTMLOr(sub.LicenseType, "-")),
				tableRow("Accessing Type", sanitizer.HTMLOr(sub.AccessingType, "-")),
				tableRow("Article Formats", sanitizer.HTMLOr(sub.ArticleFormats, "-")),
			) +
			descriptionBox(sanitizer.HTMLOr(sub.Description, "-"))),
	}
	return user, admin
}
