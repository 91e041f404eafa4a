package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case ScoreTable:
		o.printScoreTable(v)
	case HashResult:
		o.printHashResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	Code      string         `json:"code"`
	State     string         `json:"state"`
	Round     int            `json:"round"`
	Players   []Player       `json:"players"`
	Scores    map[string]int `json:"scores"`
	Rounds    []Round        `json:"rounds,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Player response type
type Player struct {
	Name       string `json:"name"`
	Phase      string `json:"phase"`
	Commitment string `json:"commitment,omitempty"`
	Choice     string `json:"choice,omitempty"`
}

// Round response type
type Round struct {
	Number  int               `json:"number"`
	Winner  *string           `json:"winner"`
	Choices map[string]string `json:"choices"`
	Deltas  map[string]int    `json:"deltas"`
}

// ScoreTable response type
type ScoreTable struct {
	Code   string         `json:"code"`
	Scores map[string]int `json:"scores"`
}

// HashResult is the output of local digest computation
type HashResult struct {
	Choice     string `json:"choice"`
	Salt       string `json:"salt"`
	Commitment string `json:"commitment"`
}

// HealthResult response type. Server is filled in client-side from the
// configured server URL.
type HealthResult struct {
	Status string `json:"status"`
	Server string `json:"server,omitempty"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.Code)
	fmt.Printf("State: %s\n", s.State)
	fmt.Printf("Round: %d\n", s.Round)
	fmt.Printf("Players (%d):\n", len(s.Players))
	for _, p := range s.Players {
		line := fmt.Sprintf("  - %s [%s]", p.Name, p.Phase)
		if p.Commitment != "" {
			line += fmt.Sprintf(" commitment=%s", p.Commitment)
		}
		if p.Choice != "" {
			line += fmt.Sprintf(" choice=%s", p.Choice)
		}
		fmt.Println(line)
	}
	if len(s.Scores) > 0 {
		fmt.Println("Scores:")
		printScores(os.Stdout, s.Scores)
	}
	if len(s.Rounds) > 0 {
		last := s.Rounds[len(s.Rounds)-1]
		if last.Winner != nil {
			fmt.Printf("Last round winner: %s\n", *last.Winner)
		} else {
			fmt.Println("Last round was a tie")
		}
	}
}

func (o *Output) printScoreTable(s ScoreTable) {
	fmt.Println("The game score so far is:")
	printScores(os.Stdout, s.Scores)
}

func (o *Output) printHashResult(h HashResult) {
	fmt.Printf("Choice: %s\n", h.Choice)
	fmt.Printf("Salt: %s\n", h.Salt)
	fmt.Printf("Commitment: %s\n", h.Commitment)
}

func (o *Output) printHealthResult(h HealthResult) {
	if h.Server != "" {
		fmt.Printf("Server: %s\n", h.Server)
	}
	fmt.Printf("Status: %s\n", h.Status)
}

// printScores writes one "- name: score" line per player in name order
func printScores(w io.Writer, scores map[string]int) {
	for _, name := range sortedNames(scores) {
		fmt.Fprintf(w, "- %s: %d\n", name, scores[name])
	}
}

// sortedNames returns score table keys in stable order
func sortedNames(scores map[string]int) []string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
