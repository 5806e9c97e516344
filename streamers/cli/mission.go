// Package cli renders mission events for the terminal dispatch path.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// MissionHandler implements streamers.MissionHandler for terminal output.
// Reports are markdown, rendered through glamour.
type MissionHandler struct {
	renderer *glamour.TermRenderer
}

func NewMissionHandler() *MissionHandler {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	return &MissionHandler{renderer: renderer}
}

func (h *MissionHandler) MissionStarted(operative string, topic string) {
	fmt.Printf("%s%sDeploying %s%s\n", ColorBold, ColorOrange, operative, ColorReset)
	fmt.Printf("%sMission target: %s%s\n\n", ColorGray, topic, ColorReset)
}

func (h *MissionHandler) AgentStarted(agentName string) {
	fmt.Printf("%s▸ %s working...%s\n", ColorGray, agentName, ColorReset)
}

func (h *MissionHandler) CallingTool(agentName string, toolName string, input string) {
	fmt.Printf("%s  calling %s%s%s\n", ColorGray, ColorBold, toolName, ColorReset)
}

func (h *MissionHandler) ToolComplete(agentName string, toolName string) {
	fmt.Printf("%s  ✓ %s done%s\n", ColorGray, toolName, ColorReset)
}

func (h *MissionHandler) AgentCompleted(agentName string) {
	fmt.Printf("%s✓ %s reported in%s\n\n", ColorGreen, agentName, ColorReset)
}

func (h *MissionHandler) MissionCompleted(report string) {
	if h.renderer != nil {
		if rendered, err := h.renderer.Render(report); err == nil {
			fmt.Print(rendered)
			return
		}
	}
	fmt.Println(report)
}

func (h *MissionHandler) MissionFailed(err error) {
	fmt.Fprintf(os.Stderr, "%s💥 Mission Error: %v%s\n", ColorRed, err, ColorReset)
}
