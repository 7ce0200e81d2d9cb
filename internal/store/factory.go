package store

type Stores struct {
	emails EmailStore
}

func NewStores() *Stores {
	return &Stores{
		emails: NewStaticEmailStore(DemoEmails()),
	}
}

func (s *Stores) Emails() EmailStore {
	return s.emails
}
