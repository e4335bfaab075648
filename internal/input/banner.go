package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	bannerTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	bannerBody  = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
)

const (
	bannerArt = `  _____ _                                      
 / ____(_)                                     
| (___  _  ___  __ _ _ __ ___   ___ _   _  ___ _ __
 \___ \| |/ _ \/ _' | '_ ' _ \ / _ \ | | |/ _ \ '__|
 ____) | |  __/ (_| | | | | | |  __/ |_| |  __/ |
|_____/|_|\___|\__, |_| |_| |_|\___|\__, |\___|_|
                __/ |                __/ |
               |___/                |___/`

	// bannerMinWidth is the narrowest terminal that still fits the art.
	bannerMinWidth = 60
)

// Banner writes the greeting shown before the first question.
// Narrow terminals get the plain one-line greeting instead of the art.
func Banner(w io.Writer, version string, width int) {
	greeting := "Welcome to the Siegmeyer static site generator"
	if version != "" {
		greeting += " v" + version
	}

	if width < bannerMinWidth {
		fmt.Fprintln(w, bannerTitle.Render(greeting))
		return
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		bannerBody.Render(strings.TrimRight(bannerArt, "\n")),
		"",
		bannerTitle.Render(greeting),
	)
	fmt.Fprintln(w, bannerBorder.Render(body))
}
