package session

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
