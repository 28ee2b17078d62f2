package mailer

// SendRequest is the input for sending one email.
type SendRequest struct {
	From     string
	To       string
	Subject  string
	Body     string
	ReplyTo  string
	ThreadID string // Gmail thread to reply into, optional
}

// Message is a simplified representation of a sent Gmail message.
type Message struct {
	ID       string
	ThreadID string
}
