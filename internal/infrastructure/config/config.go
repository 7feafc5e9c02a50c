package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"rkanban/pkg/filesystem"
)

const (
	defaultConfigFileName = "config.yml"
	defaultConfigDirName  = ".config/rkanban"
	defaultDataDirName    = ".local/share/rkanban"

	DefaultBaseURL       = "http://localhost:5000"
	DefaultAPITimeout    = 30 * time.Second
	DefaultCommitTimeout = 15 * time.Second
	DefaultLogLevel      = "info"
)

// Config holds application configuration
type Config struct {
	API         APIConfig         `yaml:"api"`
	Storage     StorageConfig     `yaml:"storage"`
	Sync        SyncConfig        `yaml:"sync"`
	Log         LogConfig         `yaml:"log"`
	TUI         TUIConfig         `yaml:"tui"`
	Keybindings KeybindingsConfig `yaml:"keybindings"`
}

// APIConfig describes the board server
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// Token overrides the stored login; only settable from the environment
	Token string `yaml:"-"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	DataPath string `yaml:"data_path"`
}

// SyncConfig tunes reconciliation with the server
type SyncConfig struct {
	// CommitTimeout bounds a drag-end move request
	CommitTimeout time.Duration `yaml:"commit_timeout"`
}

// LogConfig controls logrus output
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives logs while the TUI owns the terminal
	File string `yaml:"file"`
}

// TUIConfig holds TUI styling configuration
type TUIConfig struct {
	Styles StylesConfig `yaml:"styles"`
}

// StylesConfig holds color and styling configuration
type StylesConfig struct {
	List         ListStyle      `yaml:"list"`
	FocusedList  ListStyle      `yaml:"focused_list"`
	DropTarget   ListStyle      `yaml:"drop_target"`
	ListTitle    TextStyle      `yaml:"list_title"`
	Task         TextStyle      `yaml:"task"`
	SelectedTask TextStyle      `yaml:"selected_task"`
	DraggedTask  TextStyle      `yaml:"dragged_task"`
	Description  TextStyle      `yaml:"description"`
	DueDate      TextStyle      `yaml:"due_date"`
	Overdue      TextStyle      `yaml:"overdue"`
	Help         TextStyle      `yaml:"help"`
	Status       TextStyle      `yaml:"status"`
	Error        TextStyle      `yaml:"error"`
	Priority     PriorityColors `yaml:"priority"`
}

// ListStyle represents list column styling
type ListStyle struct {
	PaddingVertical   int    `yaml:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal"`
	BorderStyle       string `yaml:"border_style"`
	BorderColor       string `yaml:"border_color"`
}

// TextStyle represents text styling
type TextStyle struct {
	Foreground        string `yaml:"foreground,omitempty"`
	Background        string `yaml:"background,omitempty"`
	Bold              bool   `yaml:"bold,omitempty"`
	Italic            bool   `yaml:"italic,omitempty"`
	PaddingVertical   int    `yaml:"padding_vertical,omitempty"`
	PaddingHorizontal int    `yaml:"padding_horizontal,omitempty"`
	Align             string `yaml:"align,omitempty"`
}

// PriorityColors holds colors for different priority levels
type PriorityColors struct {
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`
}

// KeybindingsConfig holds keybinding configuration
type KeybindingsConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Grab    []string `yaml:"grab"`
	Drop    []string `yaml:"drop"`
	Cancel  []string `yaml:"cancel"`
	Add     []string `yaml:"add"`
	AddList []string `yaml:"add_list"`
	Edit    []string `yaml:"edit"`
	Rename  []string `yaml:"rename"`
	Delete  []string `yaml:"delete"`
	Refresh []string `yaml:"refresh"`
	Quit    []string `yaml:"quit"`
}

// Loader handles loading and saving configuration
type Loader struct {
	configPath string
	home       string
}

// NewLoader creates a loader for ~/.config/rkanban/config.yml
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Loader{
		configPath: filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName),
		home:       homeDir,
	}, nil
}

// LoadFrom creates a loader for an explicit config file
func LoadFrom(path string) (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Loader{configPath: path, home: homeDir}, nil
}

// Load reads the configuration, writing defaults on first run, then applies
// environment overrides. Settings missing from the file keep their defaults.
func (l *Loader) Load() (*Config, error) {
	exists, err := filesystem.Exists(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	cfg := Default(l.home)
	if !exists {
		if err := l.Save(cfg); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Save persists the configuration to disk
func (l *Loader) Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := filesystem.SafeWrite(l.configPath, data, 0o644, 0o755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file
func (l *Loader) GetConfigPath() string {
	return l.configPath
}

// Validate rejects settings the client cannot run with
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must be set")
	}
	if c.API.Timeout < 0 || c.Sync.CommitTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.Storage.DataPath == "" {
		return fmt.Errorf("storage.data_path must be set")
	}
	return nil
}

// Default returns the configuration written on first run
func Default(home string) *Config {
	dataDir := filepath.Join(home, defaultDataDirName)
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Storage: StorageConfig{DataPath: dataDir},
		Sync:    SyncConfig{CommitTimeout: DefaultCommitTimeout},
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  filepath.Join(dataDir, "rkanban.log"),
		},
		TUI: TUIConfig{
			Styles: StylesConfig{
				List: ListStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "240",
				},
				FocusedList: ListStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "62",
				},
				DropTarget: ListStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "double",
					BorderColor:       "#FFE66D",
				},
				ListTitle:    TextStyle{Foreground: "99", Bold: true, Align: "center"},
				Task:         TextStyle{Foreground: "252", PaddingHorizontal: 1},
				SelectedTask: TextStyle{Foreground: "230", Background: "62", Bold: true, PaddingHorizontal: 1},
				DraggedTask:  TextStyle{Foreground: "#1D1D1D", Background: "#FFE66D", Bold: true, PaddingHorizontal: 1},
				Description:  TextStyle{Foreground: "#888888", Italic: true, PaddingHorizontal: 2},
				DueDate:      TextStyle{Foreground: "#999999", PaddingHorizontal: 2},
				Overdue:      TextStyle{Foreground: "#FF6B6B", Bold: true, PaddingHorizontal: 2},
				Help:         TextStyle{Foreground: "241", PaddingVertical: 1, PaddingHorizontal: 2},
				Status:       TextStyle{Foreground: "#A8DADC", Italic: true, PaddingHorizontal: 2},
				Error:        TextStyle{Foreground: "#FF6B6B", Bold: true, PaddingHorizontal: 2},
				Priority: PriorityColors{
					High:   "#FF6B6B",
					Medium: "#FFE66D",
					Low:    "#95E1D3",
				},
			},
		},
		Keybindings: KeybindingsConfig{
			Up:      []string{"up", "k"},
			Down:    []string{"down", "j"},
			Left:    []string{"left", "h"},
			Right:   []string{"right", "l"},
			Grab:    []string{"m", " "},
			Drop:    []string{"enter"},
			Cancel:  []string{"esc"},
			Add:     []string{"a"},
			AddList: []string{"A"},
			Edit:    []string{"e"},
			Rename:  []string{"r"},
			Delete:  []string{"d"},
			Refresh: []string{"R", "ctrl+r"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}
