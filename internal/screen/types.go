// Package screen implements the screen-document model, the file-backed
// repository that resolves (flow, screen) identifiers to documents, and
// the navigation response builder consumed by the client state machine.
package screen

// Navigation transition types.
const (
	NavNavigate = "navigate"
	NavRefresh  = "refresh"
)

// Navigation directions, meaningful only for NavNavigate.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
	DirectionUp    = "up"
	DirectionDown  = "down"
)

// Navigation scopes.
const (
	ScopeContent = "content"
	ScopeFull    = "full"
)

// Navigation tells the client how to animate the transition to the
// screen it just received. It carries no server-side meaning.
type Navigation struct {
	Type       string `json:"type"`
	Direction  string `json:"direction,omitempty"`
	Scope      string `json:"scope,omitempty"`
	DurationMs int    `json:"durationMs,omitempty"`
}

// Document is one stored screen: a navigation directive, a component
// tree, and optionally form values carried forward from a previous step.
// The tree stays an untyped map because props are arbitrary JSON; the
// component schema catalog is the advisory contract for its shape.
type Document struct {
	Navigation Navigation     `json:"navigation"`
	Screen     map[string]any `json:"screen"`
	FormValues map[string]any `json:"formValues,omitempty"`
}

// Response is the payload the client navigation state machine expects.
type Response struct {
	Navigation Navigation     `json:"navigation"`
	Screen     map[string]any `json:"screen"`
	FormValues map[string]any `json:"formValues"`
}

// NotFoundDiagnostic is returned instead of a Response when the flow or
// screen does not exist. It always carries the valid alternatives so the
// client can recover without a second round trip. Callers discriminate
// by the presence of the error field.
type NotFoundDiagnostic struct {
	Error            string   `json:"error"`
	Brand            string   `json:"brand,omitempty"`
	FlowID           string   `json:"flowId"`
	ScreenID         string   `json:"screenId,omitempty"`
	AvailableBrands  []string `json:"availableBrands,omitempty"`
	AvailableFlows   []string `json:"availableFlows"`
	AvailableScreens []string `json:"availableScreens,omitempty"`
}
