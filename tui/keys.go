package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"rkanban/internal/infrastructure/config"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Grab    key.Binding
	Drop    key.Binding
	Cancel  key.Binding
	Add     key.Binding
	AddList key.Binding
	Edit    key.Binding
	Rename  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = newKeyMap(config.Default("").Keybindings)

// InitKeybindings initializes keybindings from config
func InitKeybindings(cfg *config.Config) {
	keys = newKeyMap(cfg.Keybindings)
}

func newKeyMap(kb config.KeybindingsConfig) keyMap {
	return keyMap{
		Up:      binding(kb.Up, "up"),
		Down:    binding(kb.Down, "down"),
		Left:    binding(kb.Left, "left list"),
		Right:   binding(kb.Right, "right list"),
		Grab:    binding(kb.Grab, "grab task"),
		Drop:    binding(kb.Drop, "drop"),
		Cancel:  binding(kb.Cancel, "cancel"),
		Add:     binding(kb.Add, "add task"),
		AddList: binding(kb.AddList, "add list"),
		Edit:    binding(kb.Edit, "edit"),
		Rename:  binding(kb.Rename, "rename list"),
		Delete:  binding(kb.Delete, "delete"),
		Refresh: binding(kb.Refresh, "refresh"),
		Quit:    binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	label := strings.Join(keys, "/")
	label = strings.ReplaceAll(label, " ", "space")
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}
