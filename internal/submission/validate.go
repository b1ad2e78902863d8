package submission

import "github.com/ijinpress/intake/pkg/validator"

// User-visible validation messages. The two required-field wordings differ on
// purpose: the article and contact forms require every field, the listing
// forms only a subset, and the public frontends display the text verbatim.
const (
	MsgAllFieldsRequired     = "All fields are required."
	MsgRequiredFieldsMissing = "Required fields are missing."
	MsgInvalidEmail          = "Invalid email address."
)

// Validate checks required-field presence and email syntax.
// The returned error carries the exact message shown to the submitter.
func (a JournalArticle) Validate() error {
	return validator.Apply(
		validator.Rule{
			Check:   validator.Required(a.JournalName, a.Title, a.Name, a.Email, a.Abstract),
			Message: MsgAllFieldsRequired,
		},
		validator.Rule{
			Check:   validator.ValidEmail(a.Email),
			Message: MsgInvalidEmail,
		},
	)
}

// Validate checks required-field presence and email syntax.
func (c Contact) Validate() error {
	return validator.Apply(
		validator.Rule{
			Check:   validator.Required(c.Name, c.Email, c.Subject, c.Message),
			Message: MsgAllFieldsRequired,
		},
		validator.Rule{
			Check:   validator.ValidEmail(c.Email),
			Message: MsgInvalidEmail,
		},
	)
}

// Validate checks required-field presence and email syntax.
func (c Conference) Validate() error {
	return validator.Apply(
		validator.Rule{
			Check:   validator.Required(c.Title, c.Organizer, c.Email),
			Message: MsgRequiredFieldsMissing,
		},
		validator.Rule{
			Check:   validator.ValidEmail(c.Email),
			Message: MsgInvalidEmail,
		},
	)
}

// Validate checks required-field presence and email syntax.
func (j JournalListing) Validate() error {
	return validator.Apply(
		validator.Rule{
			Check:   validator.Required(j.Title, j.Email),
			Message: MsgRequiredFieldsMissing,
		},
		validator.Rule{
			Check:   validator.ValidEmail(j.Email),
			Message: MsgInvalidEmail,
		},
	)
}
