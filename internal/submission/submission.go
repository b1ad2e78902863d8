package submission

// Kind tags a submission with its form of origin. The conference and journal
// listing values double as the "type" field of persisted email log records.
type Kind string

const (
	KindJournalArticle Kind = "journal_article"
	KindContact        Kind = "contact_form"
	KindConference     Kind = "conference_submission"
	KindJournalListing Kind = "journal_submission"
)

// JournalArticle is an article manuscript submitted to a hosted journal.
type JournalArticle struct {
	JournalName string `json:"journalName"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Abstract    string `json:"abstract"`
}

func (JournalArticle) Kind() Kind { return KindJournalArticle }

// Contact is a general contact form message.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (Contact) Kind() Kind { return KindContact }

// Conference is a conference or symposium listing proposal.
// Only Title, Organizer and Email are mandatory.
type Conference struct {
	Title         string `json:"title"`
	Organizer     string `json:"organizer"`
	Venue         string `json:"venue"`
	Date          string `json:"date"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	Language      string `json:"language"`
	Description   string `json:"description"`
}

func (Conference) Kind() Kind { return KindConference }

// JournalListing is a request to list a journal in the index.
// Only Title and Email are mandatory; the bibliographic fields are optional.
type JournalListing struct {
	Title          string `json:"title"`
	Abbreviation   string `json:"abbreviation"`
	URL            string `json:"url"`
	ISSNPrint      string `json:"issnPrint"`
	ISSNOnline     string `json:"issnOnline"`
	Publisher      string `json:"publisher"`
	Discipline     string `json:"discipline"`
	ChiefEditor    string `json:"chiefEditor"`
	Email          string `json:"email"`
	Country        string `json:"country"`
	Language       string `json:"language"`
	Frequency      string `json:"frequency"`
	YearOfStarting string `json:"yearOfStarting"`
	LicenseType    string `json:"licenseType"`
	AccessingType  string `json:"acessingType"`
	ArticleFormats string `json:"articleFormats"`
	Description    string `json:"description"`
}

func (JournalListing) Kind() Kind { return KindJournalListing }
