package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/eiannone/keyboard"
)

type MenuItem struct {
	Label string
	Value string
}

// Menu is a vertical list navigated with the arrow keys.
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	Width    int
}

func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{
		Title: title,
		Items: items,
		Width: 50,
	}
}

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}

// centerText pads text to the inner width of the box.
func centerText(text string, width int) string {
	inner := width - 4
	runes := []rune(text)
	if len(runes) >= inner {
		return string(runes[:inner])
	}
	padding := (inner - len(runes)) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", inner-len(runes)-padding)
}

// String draws the menu box with the selected item highlighted.
func (m *Menu) String() string {
	var sb strings.Builder
	line := strings.Repeat("═", m.Width-2)

	sb.WriteString("╔" + line + "╗\n")
	fmt.Fprintf(&sb, "║ %s ║\n", centerText(m.Title, m.Width))
	sb.WriteString("╠" + line + "╣\n")
	for i, item := range m.Items {
		if i == m.Selected {
			fmt.Fprintf(&sb, "║ \033[7m%s\033[0m ║\n", centerText("► "+item.Label, m.Width))
		} else {
			fmt.Fprintf(&sb, "║ %s ║\n", centerText("  "+item.Label, m.Width))
		}
	}
	sb.WriteString("╚" + line + "╝\n")
	return sb.String()
}

func (m *Menu) render() {
	clearScreen()
	fmt.Println("\n  B L O C K F A L L")
	fmt.Println()
	fmt.Print(m.String())
	fmt.Println()
	fmt.Println("Use ↑/↓ to navigate, Enter to select, 'q' to quit")
}

// MoveUp selects the previous item, wrapping to the bottom.
func (m *Menu) MoveUp() {
	if m.Selected > 0 {
		m.Selected--
	} else {
		m.Selected = len(m.Items) - 1
	}
}

// MoveDown selects the next item, wrapping to the top.
func (m *Menu) MoveDown() {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	} else {
		m.Selected = 0
	}
}

// Show blocks until an item is chosen and returns its value, or "exit".
func (m *Menu) Show() string {
	if err := keyboard.Open(); err != nil {
		fmt.Printf("Failed to open keyboard: %v\n", err)
		return "exit"
	}
	defer keyboard.Close()

	for {
		m.render()

		char, key, err := keyboard.GetKey()
		if err != nil {
			fmt.Printf("Error reading key: %v\n", err)
			return "exit"
		}

		switch key {
		case keyboard.KeyArrowUp:
			m.MoveUp()
		case keyboard.KeyArrowDown:
			m.MoveDown()
		case keyboard.KeyEnter:
			return m.Items[m.Selected].Value
		case keyboard.KeyEsc:
			return "exit"
		}

		if char == 'q' || char == 'Q' {
			return "exit"
		}
	}
}
