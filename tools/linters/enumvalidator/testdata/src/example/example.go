package example

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

type Urgency string

const (
	UrgencyHigh Urgency = "high"
)

// Label has no constants, so it is not treated as an enum.
type Label string

type Email struct {
	Subject   string
	Sentiment Sentiment
	Urgency   Urgency
	Label     Label
}

func bad() {
	e := &Email{}
	e.Sentiment = "angry" // want "enum field Sentiment assigned string literal"

	_ = Email{
		Urgency: "critical", // want "enum field Urgency assigned string literal"
	}
}

func good() {
	e := &Email{}
	e.Sentiment = SentimentNegative // OK: using constant
	e.Subject = "Order delayed"     // OK: plain string field
	e.Label = "vip"                 // OK: no declared constants

	_ = &Email{Urgency: UrgencyHigh, Subject: "Thanks"}
}

func alsoGood() {
	// OK: Variable, not literal
	sentiment := SentimentPositive
	e := &Email{Sentiment: sentiment}
	_ = e
}
