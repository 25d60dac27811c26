package mail

// Message is one outgoing email with a plain-text body and its HTML
// alternative.
type Message struct {
	FromEmail string
	FromName  string
	To        string
	Subject   string
	TextBody  string
	HTMLBody  string
}
