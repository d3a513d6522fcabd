package response

import "fmt"

// Type classifies a Response so the presentation layer knows how to render it.
type Type string

const (
	TypeSnippet       Type = "snippet"
	TypeMemory        Type = "memory"
	TypeContext       Type = "context"
	TypeHelp          Type = "help"
	TypeOrchestration Type = "orchestration"
	TypeCampaign      Type = "campaign"
)

// NewType creates a Type with validation
func NewType(value string) (Type, error) {
	switch Type(value) {
	case TypeSnippet, TypeMemory, TypeContext, TypeHelp, TypeOrchestration, TypeCampaign:
		return Type(value), nil
	default:
		return "", fmt.Errorf("invalid response type: %s", value)
	}
}

// IsValid returns true if the type is one of the known response types
func (t Type) IsValid() bool {
	_, err := NewType(string(t))
	return err == nil
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// Response is the uniform output value returned by any classifier or plugin
// handler. It is constructed once and returned up the call chain unchanged;
// nothing mutates a Response after construction.
type Response struct {
	Message      string      `json:"message"`
	Type         Type        `json:"type"`
	Code         string      `json:"code,omitempty"`
	Data         interface{} `json:"data,omitempty"`
	Related      []string    `json:"related,omitempty"`
	Clipboard    bool        `json:"clipboard,omitempty"`
	DashboardURL string      `json:"dashboard_url,omitempty"`
	Workflow     []string    `json:"workflow,omitempty"`
	Agents       []string    `json:"agents,omitempty"`
}

// New creates a Response with the minimal required fields
func New(message string, typ Type) *Response {
	return &Response{
		Message: message,
		Type:    typ,
	}
}

// String returns a short string representation for logging
func (r *Response) String() string {
	return fmt.Sprintf("Response{Type: %s, Message: %.60s}", r.Type, r.Message)
}
