package submission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijinpress/intake/internal/submission"
)

func validArticle() submission.JournalArticle {
	return submission.JournalArticle{
		JournalName: "International Journal of Nursing",
		Title:       "Care Outcomes Study",
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		Abstract:    "A study of outcomes.",
	}
}

func validContact() submission.Contact {
	return submission.Contact{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Hi",
		Message: "Hello",
	}
}

func validConference() submission.Conference {
	return submission.Conference{
		Title:     "Nursing Research Symposium",
		Organizer: "Health Society",
		Email:     "org@example.com",
	}
}

func validListing() submission.JournalListing {
	return submission.JournalListing{
		Title: "Journal of Example Studies",
		Email: "editor@example.com",
	}
}

func TestJournalArticle_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validArticle().Validate())

	t.Run("each required field", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*submission.JournalArticle){
			"journalName": func(a *submission.JournalArticle) { a.JournalName = "" },
			"title":       func(a *submission.JournalArticle) { a.Title = "" },
			"name":        func(a *submission.JournalArticle) { a.Name = "" },
			"email":       func(a *submission.JournalArticle) { a.Email = "" },
			"abstract":    func(a *submission.JournalArticle) { a.Abstract = "" },
		}
		for field, mutate := range mutations {
			a := validArticle()
			mutate(&a)
			err := a.Validate()
			require.Error(t, err, field)
			assert.Equal(t, submission.MsgAllFieldsRequired, err.Error(), field)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		a := validArticle()
		a.Email = "not-an-email"
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, submission.MsgInvalidEmail, err.Error())
	})
}

func TestContact_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validContact().Validate())

	t.Run("each required field", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*submission.Contact){
			"name":    func(c *submission.Contact) { c.Name = "" },
			"email":   func(c *submission.Contact) { c.Email = "" },
			"subject": func(c *submission.Contact) { c.Subject = "" },
			"message": func(c *submission.Contact) { c.Message = "" },
		}
		for field, mutate := range mutations {
			c := validContact()
			mutate(&c)
			err := c.Validate()
			require.Error(t, err, field)
			assert.Equal(t, submission.MsgAllFieldsRequired, err.Error(), field)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		c := validContact()
		c.Email = "not-an-email"
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, submission.MsgInvalidEmail, err.Error())
	})
}

func TestConference_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConference().Validate())

	t.Run("each required field", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*submission.Conference){
			"title":     func(c *submission.Conference) { c.Title = "" },
			"organizer": func(c *submission.Conference) { c.Organizer = "" },
			"email":     func(c *submission.Conference) { c.Email = "" },
		}
		for field, mutate := range mutations {
			c := validConference()
			mutate(&c)
			err := c.Validate()
			require.Error(t, err, field)
			assert.Equal(t, submission.MsgRequiredFieldsMissing, err.Error(), field)
		}
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		t.Parallel()

		c := validConference()
		c.Venue, c.Date, c.ContactPerson, c.Country, c.Language, c.Description = "", "", "", "", "", ""
		assert.NoError(t, c.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		c := validConference()
		c.Email = "bad@"
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, submission.MsgInvalidEmail, err.Error())
	})
}

func TestJournalListing_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validListing().Validate())

	t.Run("each required field", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*submission.JournalListing){
			"title": func(j *submission.JournalListing) { j.Title = "" },
			"email": func(j *submission.JournalListing) { j.Email = "" },
		}
		for field, mutate := range mutations {
			j := validListing()
			mutate(&j)
			err := j.Validate()
			require.Error(t, err, field)
			assert.Equal(t, submission.MsgRequiredFieldsMissing, err.Error(), field)
		}
	})

	t.Run("bibliographic fields optional", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validListing().Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		j := validListing()
		j.Email = "not-an-email"
		err := j.Validate()
		require.Error(t, err)
		assert.Equal(t, submission.MsgInvalidEmail, err.Error())
	})
}
