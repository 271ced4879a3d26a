package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartAutodesk   key.Binding
	StopAutodesk    key.Binding
	RestartAutodesk key.Binding
	StartZoo        key.Binding
	StopZoo         key.Binding
	RestartZoo      key.Binding
	Log             key.Binding
	ZooAdmin        key.Binding
	Info            key.Binding
	Back            key.Binding
	Quit            key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		StartAutodesk:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "start autodesk")),
		StopAutodesk:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "stop autodesk")),
		RestartAutodesk: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "restart autodesk")),
		StartZoo:        key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "start zoo")),
		StopZoo:         key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "stop zoo")),
		RestartZoo:      key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "restart zoo")),
		Log:             key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "autodesk log")),
		ZooAdmin:        key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoo admin")),
		Info:            key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Back:            key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Log, k.ZooAdmin, k.Info, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartAutodesk, k.StopAutodesk, k.RestartAutodesk},
		{k.StartZoo, k.StopZoo, k.RestartZoo},
		{k.Log, k.ZooAdmin, k.Info, k.Quit},
	}
}
