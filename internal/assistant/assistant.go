// ABOUTME: Assistant type and the icon/status lookup tables shared by the UI
// ABOUTME: Assistants are named AI personas with capabilities and an idle/working status

package assistant

// Status describes whether an assistant is currently available
type Status string

const (
	StatusIdle    Status = "idle"
	StatusWorking Status = "working"
	StatusOffline Status = "offline"
)

// Category groups assistants in the selection panel
type Category string

const (
	CategoryGeneral      Category = "general"
	CategoryProfessional Category = "professional"
)

// Assistant is a named AI persona a conversation can be bound to
type Assistant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Enabled      bool     `json:"enabled"`
	Customizable bool     `json:"customizable"`
	Status       Status   `json:"status"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// IconLabels maps symbolic icon keys to display labels
var IconLabels = map[string]string{
	"bot":        "Bot",
	"code":       "Code",
	"palette":    "Creative",
	"calculator": "Math",
	"globe":      "Language",
	"filetext":   "Documents",
	"zap":        "Productivity",
	"settings":   "Tools",
}

// StatusLabels maps assistant statuses to display labels
var StatusLabels = map[Status]string{
	StatusIdle:    "idle",
	StatusWorking: "working",
	StatusOffline: "offline",
}
