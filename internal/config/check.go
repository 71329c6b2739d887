package config

import (
	"fmt"
	"io"
	"os"

	"github.com/quickgrab/quickgrab/internal/config/registry"
	"github.com/quickgrab/quickgrab/internal/shortcut"
)

// SettingsView gives semantic rules read access to effective values
// while a validation pass holds the handler lock. Reads degrade to the
// key's default exactly like ConfigHandler.Value.
type SettingsView struct {
	h *ConfigHandler
}

// Value returns the effective typed value for a recognized key.
func (v SettingsView) Value(key string) any {
	return v.h.valueLocked(key)
}

// SemanticRule is a cross-key consistency rule. Check returns true when
// the rule is satisfied; violations are described on log.
type SemanticRule struct {
	Name  string
	Check func(view SettingsView, log io.Writer) bool
}

// DefaultSemanticRules returns the built-in cross-key rules.
func DefaultSemanticRules() []SemanticRule {
	return []SemanticRule{
		{
			Name: "fixed save path exists",
			Check: func(view SettingsView, log io.Writer) bool {
				if !view.Value("savePathFixed").(bool) {
					return true
				}
				path := view.Value("savePath").(string)
				if path == "" {
					fmt.Fprintln(log, "savePathFixed is set but savePath is empty")
					return false
				}
				if _, err := os.Stat(path); err != nil {
					fmt.Fprintf(log, "savePathFixed is set but savePath %q is not accessible: %v\n", path, err)
					return false
				}
				return true
			},
		},
		{
			Name: "fullscreen keeps every button",
			Check: func(view SettingsView, log io.Writer) bool {
				if view.Value("windowMode").(string) != registry.WindowModeFullscreen {
					return true
				}
				have := make(map[string]bool)
				for _, b := range view.Value("buttons").([]string) {
					have[b] = true
				}
				ok := true
				for _, b := range registry.AllButtons() {
					if !have[b] {
						fmt.Fprintf(log, "fullscreen window mode requires button %q\n", b)
						ok = false
					}
				}
				return ok
			},
		},
	}
}

// CheckForErrors runs the full validation pipeline over the stored
// settings and reports whether any problem was found. All stages run
// even after the first hit so log receives a complete report. A nil log
// discards diagnostics.
func (h *ConfigHandler) CheckForErrors(log io.Writer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkForErrorsLocked(log)
}

func (h *ConfigHandler) checkForErrorsLocked(log io.Writer) bool {
	if log == nil {
		log = io.Discard
	}

	unrecognized := h.checkUnrecognizedLocked(log)
	conflicts := h.checkShortcutConflictsLocked(log)
	semantics := h.checkSemanticsLocked(log)

	return unrecognized || conflicts || semantics
}

// CheckUnrecognizedSettings reports stored groups or keys outside the
// recognized sets.
func (h *ConfigHandler) CheckUnrecognizedSettings(log io.Writer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if log == nil {
		log = io.Discard
	}
	return h.checkUnrecognizedLocked(log)
}

func (h *ConfigHandler) checkUnrecognizedLocked(log io.Writer) bool {
	groups, err := h.store.Groups()
	if err != nil {
		fmt.Fprintf(log, "settings file is unreadable: %v\n", err)
		return true
	}

	found := false
	for _, group := range groups {
		recognized := func(string) bool { return false }
		switch group {
		case GroupGeneral:
			recognized = h.reg.IsRecognizedGeneral
		case GroupShortcuts:
			recognized = h.reg.IsRecognizedShortcut
		default:
			fmt.Fprintf(log, "unrecognized settings group [%s]\n", group)
			found = true
			continue
		}

		keys, err := h.store.Keys(group)
		if err != nil {
			fmt.Fprintf(log, "settings group [%s] is unreadable: %v\n", group, err)
			found = true
			continue
		}
		for _, key := range keys {
			if !recognized(key) {
				fmt.Fprintf(log, "unrecognized setting %s in [%s]\n", key, group)
				found = true
			}
		}
	}
	return found
}

// CheckShortcutConflicts reports distinct actions bound to the same
// chord. Only stored bindings participate; factory defaults never
// conflict with them.
func (h *ConfigHandler) CheckShortcutConflicts(log io.Writer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if log == nil {
		log = io.Discard
	}
	return h.checkShortcutConflictsLocked(log)
}

func (h *ConfigHandler) checkShortcutConflictsLocked(log io.Writer) bool {
	keys, err := h.store.Keys(GroupShortcuts)
	if err != nil {
		return false
	}

	found := false
	bound := make(map[string]string, len(keys))
	for _, name := range keys {
		raw, ok, err := h.store.Read(GroupShortcuts, name)
		if err != nil || !ok {
			continue
		}
		normalized, err := shortcut.Normalize(raw)
		if err != nil || normalized == "" {
			// Malformed chords are the semantics stage's problem and
			// unbound actions cannot conflict.
			continue
		}
		if other, taken := bound[normalized]; taken {
			fmt.Fprintf(log, "shortcut conflict: %s and %s are both bound to %s\n", other, name, normalized)
			found = true
			continue
		}
		bound[normalized] = name
	}
	return found
}

// CheckSemantics reports stored values their handler rejects, plus any
// violated cross-key rule.
func (h *ConfigHandler) CheckSemantics(log io.Writer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if log == nil {
		log = io.Discard
	}
	return h.checkSemanticsLocked(log)
}

func (h *ConfigHandler) checkSemanticsLocked(log io.Writer) bool {
	found := false

	for _, group := range []string{GroupGeneral, GroupShortcuts} {
		keys, err := h.store.Keys(group)
		if err != nil {
			continue
		}
		for _, key := range keys {
			handler, err := h.reg.HandlerFor(key)
			if err != nil {
				// Unrecognized keys are reported by their own stage.
				continue
			}
			raw, ok, err := h.store.Read(group, key)
			if err != nil || !ok {
				continue
			}
			if !handler.Validate(raw) {
				fmt.Fprintf(log, "invalid value for %s: %q\n", key, raw)
				found = true
			}
		}
	}

	view := SettingsView{h: h}
	for _, rule := range h.semanticRules {
		if !rule.Check(view, log) {
			found = true
		}
	}
	return found
}
