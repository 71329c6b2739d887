package registry

import (
	"fmt"
	"sort"
)

// Capture window modes.
const (
	WindowModeFullscreen = "fullscreen"
	WindowModeMaximized  = "maximized"
	WindowModeWindowed   = "windowed"
)

// DefaultFilenamePattern is the factory filename pattern for saved captures.
const DefaultFilenamePattern = "%F_%H-%M-%S"

// knownButtons is the closed set of capture toolbar buttons.
var knownButtons = map[string]bool{
	"pencil":      true,
	"line":        true,
	"arrow":       true,
	"rectangle":   true,
	"circle":      true,
	"circlecount": true,
	"marker":      true,
	"text":        true,
	"blur":        true,
	"pixelate":    true,
	"selection":   true,
	"move":        true,
	"undo":        true,
	"redo":        true,
	"copy":        true,
	"save":        true,
	"upload":      true,
	"openapp":     true,
	"pin":         true,
	"sidepanel":   true,
	"accept":      true,
	"exit":        true,
}

// AllButtons returns every known capture button name, sorted.
func AllButtons() []string {
	out := make([]string, 0, len(knownButtons))
	for b := range knownButtons {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// IsKnownButton reports whether name is a known capture button.
func IsKnownButton(name string) bool {
	return knownButtons[name]
}

// defaultShortcuts maps every action allowed a binding to its factory
// default chord. An empty chord means unbound by default. This is the
// closed shortcut-name set: an action absent here cannot be bound at all.
var defaultShortcuts = map[string]string{
	"captureScreen":     "Print",
	"openLauncher":      "",
	"showHistory":       "Ctrl+H",
	"saveCapture":       "Ctrl+S",
	"copyToClipboard":   "Ctrl+C",
	"uploadImage":       "Ctrl+U",
	"openWithApp":       "Ctrl+O",
	"pinImage":          "",
	"exitCapture":       "Escape",
	"acceptCapture":     "Enter",
	"selectAll":         "Ctrl+A",
	"undoModification":  "Ctrl+Z",
	"redoModification":  "Ctrl+Shift+Z",
	"toggleSidePanel":   "Space",
	"moveSelection":     "V",
	"drawPencil":        "P",
	"drawLine":          "L",
	"drawArrow":         "A",
	"drawRectangle":     "R",
	"drawCircle":        "C",
	"drawCircleCount":   "N",
	"drawMarker":        "M",
	"drawText":          "T",
	"blurSelection":     "B",
	"pixelateSelection": "X",
}

// Registry maps every recognized settings key to its ValueHandler and
// exposes the two recognized-key sets. It is immutable after New.
type Registry struct {
	handlers  map[string]ValueHandler
	general   map[string]struct{}
	shortcuts map[string]struct{}
}

// New builds the registry. This is a static step with no I/O.
func New() *Registry {
	r := &Registry{
		handlers:  make(map[string]ValueHandler),
		general:   make(map[string]struct{}),
		shortcuts: make(map[string]struct{}),
	}

	for _, h := range generalHandlers() {
		r.registerGeneral(h)
	}
	for name, def := range defaultShortcuts {
		r.registerShortcut(chordHandler{name: name, def: def})
	}

	return r
}

func (r *Registry) registerGeneral(h ValueHandler) {
	key := h.Key()
	if _, dup := r.handlers[key]; dup {
		panic(fmt.Sprintf("registry: duplicate handler for %q", key))
	}
	r.handlers[key] = h
	r.general[key] = struct{}{}
}

func (r *Registry) registerShortcut(h ValueHandler) {
	name := h.Key()
	if _, dup := r.handlers[name]; dup {
		panic(fmt.Sprintf("registry: duplicate handler for %q", name))
	}
	r.handlers[name] = h
	r.shortcuts[name] = struct{}{}
}

// HandlerFor returns the handler for key, or an ErrUnrecognizedKey error.
func (r *Registry) HandlerFor(key string) (ValueHandler, error) {
	h, ok := r.handlers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedKey, key)
	}
	return h, nil
}

// MustHandler returns the handler for key and panics if none is
// registered. Use only for keys produced by the typed accessors, where a
// miss is a defect in this package.
func (r *Registry) MustHandler(key string) ValueHandler {
	h, err := r.HandlerFor(key)
	if err != nil {
		panic(err)
	}
	return h
}

// IsRecognizedGeneral reports whether key is a recognized general option.
func (r *Registry) IsRecognizedGeneral(key string) bool {
	_, ok := r.general[key]
	return ok
}

// IsRecognizedShortcut reports whether name may carry a shortcut binding.
func (r *Registry) IsRecognizedShortcut(name string) bool {
	_, ok := r.shortcuts[name]
	return ok
}

// GeneralOptions returns every recognized general-option key, sorted.
func (r *Registry) GeneralOptions() []string {
	return sortedKeys(r.general)
}

// ShortcutNames returns every recognized shortcut action name, sorted.
func (r *Registry) ShortcutNames() []string {
	return sortedKeys(r.shortcuts)
}

// DefaultShortcut returns the factory default chord for an action.
// Unknown actions return the empty chord.
func (r *Registry) DefaultShortcut(name string) string {
	return defaultShortcuts[name]
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// generalHandlers enumerates the handler for every general option.
// Adding a typed accessor in the config package requires an entry here;
// the accessor coverage test enforces that.
func generalHandlers() []ValueHandler {
	return []ValueHandler{
		stringHandler{key: "savePath", def: ""},
		boolHandler{key: "savePathFixed", def: false},
		enumHandler{key: "saveAsFileExtension", def: "png",
			allowed: []string{"png", "jpg", "jpeg", "bmp", "webp"}},
		stringHandler{key: "filenamePattern", def: DefaultFilenamePattern},
		colorHandler{key: "uiColor", def: "#740096"},
		colorHandler{key: "contrastUiColor", def: "#270033"},
		colorHandler{key: "drawColor", def: "#ff0000"},
		colorListHandler{key: "userColors", def: []string{
			"picker", "#ff0000", "#ff8800", "#ffff00", "#00ff00",
			"#00ffff", "#0000ff", "#ff00ff", "#ffffff", "#000000",
		}},
		stringHandler{key: "fontFamily", def: ""},
		boolHandler{key: "showHelp", def: true},
		boolHandler{key: "showSidePanelButton", def: true},
		boolHandler{key: "showDesktopNotification", def: true},
		boolHandler{key: "disabledTrayIcon", def: false},
		intHandler{key: "drawThickness", def: 3, min: 0, max: 100},
		intHandler{key: "drawFontSize", def: 8, min: 1, max: 500},
		boolHandler{key: "keepOpenAppLauncher", def: false},
		boolHandler{key: "checkForUpdates", def: true},
		boolHandler{key: "showStartupLaunchMessage", def: true},
		intHandler{key: "contrastOpacity", def: 190, min: 0, max: 255},
		boolHandler{key: "copyAndCloseAfterUpload", def: true},
		boolHandler{key: "historyConfirmationToDelete", def: true},
		intHandler{key: "uploadHistoryMax", def: 25, min: 0, max: 10000},
		boolHandler{key: "saveAfterCopy", def: false},
		boolHandler{key: "copyPathAfterSave", def: false},
		boolHandler{key: "useJpgForClipboard", def: false},
		stringHandler{key: "ignoreUpdateToVersion", def: ""},
		intHandler{key: "undoLimit", def: 100, min: 1, max: 999},
		buttonListHandler{key: "buttons", def: AllButtons()},
		boolHandler{key: "startupLaunch", def: false},
		enumHandler{key: "windowMode", def: WindowModeFullscreen,
			allowed: []string{WindowModeFullscreen, WindowModeMaximized, WindowModeWindowed}},
	}
}
