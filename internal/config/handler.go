package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/quickgrab/quickgrab/internal/config/notify"
	"github.com/quickgrab/quickgrab/internal/config/registry"
	"github.com/quickgrab/quickgrab/internal/config/store"
	"github.com/quickgrab/quickgrab/internal/config/watcher"
	"github.com/quickgrab/quickgrab/internal/shortcut"
)

// Settings groups in the backing file.
const (
	// GroupGeneral holds every non-shortcut option.
	GroupGeneral = "General"

	// GroupShortcuts holds the per-action key bindings.
	GroupShortcuts = "Shortcuts"
)

// ConfigHandler provides typed, validated access to the quickgrab
// settings file. Reads never fail: a malformed or absent value degrades
// to the key's factory default. Writes validate first and refuse bad
// values. External edits of the backing file are observed and re-drive
// validation, surfacing an aggregate error signal through notifications.
type ConfigHandler struct {
	mu sync.Mutex

	reg      *registry.Registry
	store    store.Store
	state    *ErrorState
	notifier *notify.Notifier

	watcher      *watcher.Watcher
	watchEnabled bool

	semanticRules []SemanticRule

	skipInitialCheck bool
}

// Option configures a ConfigHandler.
type Option func(*ConfigHandler)

// WithStore sets the backing store. The default is a TOML store at the
// user config path.
func WithStore(s store.Store) Option {
	return func(h *ConfigHandler) {
		h.store = s
	}
}

// WithErrorState injects an error state instead of the process-wide
// shared one. Intended for tests.
func WithErrorState(s *ErrorState) Option {
	return func(h *ConfigHandler) {
		h.state = s
	}
}

// WithFileWatch enables or disables watching the backing file.
// Watching is on by default and starts lazily on first access.
func WithFileWatch(enable bool) Option {
	return func(h *ConfigHandler) {
		h.watchEnabled = enable
	}
}

// WithSemanticRules replaces the default cross-key semantic rules.
func WithSemanticRules(rules ...SemanticRule) Option {
	return func(h *ConfigHandler) {
		h.semanticRules = rules
	}
}

// WithSkipInitialErrorCheck defers the first validation pass to the
// first settings access. Used during early startup, before defaults are
// fully populated, to avoid false positives.
func WithSkipInitialErrorCheck() Option {
	return func(h *ConfigHandler) {
		h.skipInitialCheck = true
	}
}

// New creates a ConfigHandler. Unless WithSkipInitialErrorCheck is given
// the settings are validated immediately and the shared error state is
// primed without emitting notifications (nobody has subscribed yet).
func New(opts ...Option) *ConfigHandler {
	h := &ConfigHandler{
		reg:           registry.New(),
		state:         sharedState,
		notifier:      notify.New(),
		watchEnabled:  true,
		semanticRules: DefaultSemanticRules(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.store == nil {
		h.store = store.NewTOMLStore(DefaultConfigPath())
	}

	if h.skipInitialCheck {
		h.state.setCheckPending(true)
	} else {
		h.state.setError(h.CheckForErrors(nil))
		h.state.setCheckPending(false)
	}

	return h
}

// DefaultConfigPath returns the default settings file location.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quickgrab", "quickgrab.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "quickgrab", "quickgrab.toml")
}

// Close stops the file watch, if any.
func (h *ConfigHandler) Close() {
	h.mu.Lock()
	w := h.watcher
	h.watcher = nil
	h.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
}

// Subscribe registers an observer for error, errorResolved and
// fileChanged notifications.
func (h *ConfigHandler) Subscribe(observer notify.Observer) *notify.Subscription {
	return h.notifier.Subscribe(observer)
}

// ConfigFilePath returns the backing file path.
func (h *ConfigHandler) ConfigFilePath() string {
	return h.store.FilePath()
}

// Value returns the typed value for a recognized key, falling back to
// the key's default when the stored value is absent or malformed.
// Calling Value with an unregistered key is a programming error and
// panics; use the typed accessors for compile-time safety.
func (h *ConfigHandler) Value(key string) any {
	h.mu.Lock()
	var ev *notify.Event
	if h.state.CheckPending() {
		ev = h.runErrorCheckLocked()
	}
	h.ensureFileWatchedLocked()
	v := h.valueLocked(key)
	h.mu.Unlock()

	if ev != nil {
		h.notifier.Notify(*ev)
	}
	return v
}

func (h *ConfigHandler) valueLocked(key string) any {
	handler := h.reg.MustHandler(key)

	raw, ok, err := h.store.Read(h.groupFor(key), key)
	if err != nil || !ok {
		return handler.Default()
	}
	v, err := handler.Decode(raw)
	if err != nil {
		// Malformed stored value: recover silently with the default.
		return handler.Default()
	}
	return v
}

// SetValue validates and writes a value for a recognized key.
// An unrecognized key returns an error wrapping ErrUnrecognizedKey: that
// is a defect in the calling code, never bad user data.
func (h *ConfigHandler) SetValue(key string, value any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.setValueLocked(key, value)
}

func (h *ConfigHandler) setValueLocked(key string, value any) error {
	handler, err := h.reg.HandlerFor(key)
	if err != nil {
		return err
	}
	raw, err := handler.Encode(value)
	if err != nil {
		return err
	}

	h.ensureFileWatchedLocked()

	// Our own write lands in the watcher as an external change;
	// suppress exactly one validation pass for it.
	h.state.SkipNextErrorCheck()
	if err := h.store.Write(h.groupFor(key), key, raw); err != nil {
		h.state.consumeSkip()
		return err
	}
	h.state.setCheckPending(false)
	return nil
}

// Remove deletes a stored key, reverting reads to the default.
func (h *ConfigHandler) Remove(key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.SkipNextErrorCheck()
	if err := h.store.Delete(h.groupFor(key), key); err != nil {
		h.state.consumeSkip()
		return err
	}
	return nil
}

// Shortcut returns the effective chord bound to an action: the stored
// binding if present and well formed, otherwise the factory default.
// The empty string means unbound.
func (h *ConfigHandler) Shortcut(name string) string {
	return h.Value(name).(string)
}

// SetShortcut binds a chord to an action. It returns false without
// writing when the chord is already bound to a different action, leaving
// the resolution to the caller. Binding the empty chord unbinds.
func (h *ConfigHandler) SetShortcut(name, chord string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handler, err := h.reg.HandlerFor(name)
	if err != nil {
		return false, err
	}
	if !h.reg.IsRecognizedShortcut(name) {
		return false, errUnrecognizedShortcut(name)
	}

	normalized, err := shortcut.Normalize(chord)
	if err != nil {
		return false, err
	}

	if normalized != "" && h.chordTakenLocked(name, normalized) {
		return false, nil
	}

	raw, err := handler.Encode(normalized)
	if err != nil {
		return false, err
	}

	h.ensureFileWatchedLocked()
	h.state.SkipNextErrorCheck()
	if err := h.store.Write(GroupShortcuts, name, raw); err != nil {
		h.state.consumeSkip()
		return false, err
	}
	h.state.setCheckPending(false)
	return true, nil
}

// chordTakenLocked reports whether a normalized chord is stored for any
// action other than name.
func (h *ConfigHandler) chordTakenLocked(name, normalized string) bool {
	keys, err := h.store.Keys(GroupShortcuts)
	if err != nil {
		return false
	}
	for _, other := range keys {
		if other == name {
			continue
		}
		raw, ok, err := h.store.Read(GroupShortcuts, other)
		if err != nil || !ok {
			continue
		}
		otherNorm, err := shortcut.Normalize(raw)
		if err != nil {
			continue
		}
		if otherNorm == normalized {
			return true
		}
	}
	return false
}

// KeysInGroup returns the keys actually stored under a group.
func (h *ConfigHandler) KeysInGroup(group string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.Keys(group)
}

// RecognizedGeneralOptions returns the closed general-option key set.
func (h *ConfigHandler) RecognizedGeneralOptions() []string {
	return h.reg.GeneralOptions()
}

// RecognizedShortcutNames returns the closed shortcut action set.
func (h *ConfigHandler) RecognizedShortcutNames() []string {
	return h.reg.ShortcutNames()
}

// SetDefaultSettings wipes every stored value, restoring factory
// defaults, and re-runs validation so a previous error state resolves.
func (h *ConfigHandler) SetDefaultSettings() error {
	h.mu.Lock()

	h.state.SkipNextErrorCheck()
	if err := h.store.Clear(); err != nil {
		h.state.consumeSkip()
		h.mu.Unlock()
		return err
	}

	// The skip flag is reserved for the watcher echo of the Clear;
	// validate directly so the error state resolves deterministically.
	hasErrors := h.checkForErrorsLocked(nil)
	ev := h.applyErrorStateLocked(hasErrors)
	h.mu.Unlock()

	if ev != nil {
		h.notifier.Notify(*ev)
	}
	return nil
}

// SetAllTheButtons stores the complete capture-button set, as forced by
// fullscreen window mode.
func (h *ConfigHandler) SetAllTheButtons() error {
	return h.SetValue("buttons", registry.AllButtons())
}

// FilenamePatternDefault returns the factory filename pattern.
func (h *ConfigHandler) FilenamePatternDefault() string {
	return registry.DefaultFilenamePattern
}

// groupFor returns the storage group for a recognized key.
func (h *ConfigHandler) groupFor(key string) string {
	if h.reg.IsRecognizedShortcut(key) {
		return GroupShortcuts
	}
	return GroupGeneral
}

// ensureFileWatchedLocked lazily starts the backing-file watch.
// Failure to watch is not fatal; the next access retries.
func (h *ConfigHandler) ensureFileWatchedLocked() {
	if !h.watchEnabled || h.watcher != nil {
		return
	}
	w, err := watcher.New(h.store.FilePath())
	if err != nil {
		return
	}
	w.OnChange(h.onFileChanged)
	h.watcher = w
}

// onFileChanged runs on the watch goroutine for every change to the
// backing file. The error/errorResolved notification, if any, is always
// delivered before fileChanged.
func (h *ConfigHandler) onFileChanged() {
	h.mu.Lock()
	h.state.setCheckPending(true)
	ev := h.runErrorCheckLocked()
	h.mu.Unlock()

	if ev != nil {
		h.notifier.Notify(*ev)
	}
	h.notifier.Notify(notify.EventFileChanged)
}

// CheckAndHandleError runs the validation pipeline and transitions the
// error state, emitting error/errorResolved on transitions. If the
// one-shot suppression flag is armed it is consumed instead and no
// validation happens.
func (h *ConfigHandler) CheckAndHandleError() {
	h.mu.Lock()
	ev := h.runErrorCheckLocked()
	h.mu.Unlock()

	if ev != nil {
		h.notifier.Notify(*ev)
	}
}

// runErrorCheckLocked performs the suppression-aware check and returns
// the notification to emit after the lock is released, if any.
func (h *ConfigHandler) runErrorCheckLocked() *notify.Event {
	if h.state.consumeSkip() {
		return nil
	}
	hasErrors := h.checkForErrorsLocked(nil)
	return h.applyErrorStateLocked(hasErrors)
}

// applyErrorStateLocked transitions the state machine and picks the
// notification for an actual transition. Re-confirming the current
// state emits nothing.
func (h *ConfigHandler) applyErrorStateLocked(hasErrors bool) *notify.Event {
	h.state.setCheckPending(false)
	if !h.state.setError(hasErrors) {
		return nil
	}
	ev := notify.EventErrorResolved
	if hasErrors {
		ev = notify.EventError
	}
	return &ev
}

// SetErrorState injects an explicit error state, bypassing validation.
// Used after an automated repair whose outcome is already known.
func (h *ConfigHandler) SetErrorState(hasError bool) {
	h.mu.Lock()
	ev := h.applyErrorStateLocked(hasError)
	h.mu.Unlock()

	if ev != nil {
		h.notifier.Notify(*ev)
	}
}

// HasError reports whether the settings are currently in error state.
func (h *ConfigHandler) HasError() bool {
	return h.state.HasError()
}

// ErrorMessage returns a user-facing description of the current health.
func (h *ConfigHandler) ErrorMessage() string {
	if !h.state.HasError() {
		return ""
	}
	return "The configuration file contains errors. Fix the file by hand or restore the default settings."
}
