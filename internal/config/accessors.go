package config

// Typed accessors for every general option. Each getter degrades to the
// factory default when the stored value is absent or malformed; each
// setter validates before writing.

// SavePath is the directory captures are saved to. Empty means ask.
func (h *ConfigHandler) SavePath() string { return h.Value("savePath").(string) }

// SetSavePath sets the capture save directory.
func (h *ConfigHandler) SetSavePath(v string) error { return h.SetValue("savePath", v) }

// SavePathFixed reports whether captures always save to SavePath
// without prompting.
func (h *ConfigHandler) SavePathFixed() bool { return h.Value("savePathFixed").(bool) }

// SetSavePathFixed sets whether the save path is fixed.
func (h *ConfigHandler) SetSavePathFixed(v bool) error { return h.SetValue("savePathFixed", v) }

// SaveAsFileExtension is the image format captures are saved as.
func (h *ConfigHandler) SaveAsFileExtension() string {
	return h.Value("saveAsFileExtension").(string)
}

// SetSaveAsFileExtension sets the capture image format.
func (h *ConfigHandler) SetSaveAsFileExtension(v string) error {
	return h.SetValue("saveAsFileExtension", v)
}

// FilenamePattern is the strftime-style pattern for capture filenames.
func (h *ConfigHandler) FilenamePattern() string { return h.Value("filenamePattern").(string) }

// SetFilenamePattern sets the capture filename pattern.
func (h *ConfigHandler) SetFilenamePattern(v string) error {
	return h.SetValue("filenamePattern", v)
}

// UIColor is the main interface accent color.
func (h *ConfigHandler) UIColor() string { return h.Value("uiColor").(string) }

// SetUIColor sets the main interface accent color.
func (h *ConfigHandler) SetUIColor(v string) error { return h.SetValue("uiColor", v) }

// ContrastUIColor is the secondary interface color.
func (h *ConfigHandler) ContrastUIColor() string { return h.Value("contrastUiColor").(string) }

// SetContrastUIColor sets the secondary interface color.
func (h *ConfigHandler) SetContrastUIColor(v string) error {
	return h.SetValue("contrastUiColor", v)
}

// DrawColor is the active annotation color.
func (h *ConfigHandler) DrawColor() string { return h.Value("drawColor").(string) }

// SetDrawColor sets the active annotation color.
func (h *ConfigHandler) SetDrawColor(v string) error { return h.SetValue("drawColor", v) }

// UserColors is the color-wheel preset list; the literal "picker" entry
// is the interactive picker slot.
func (h *ConfigHandler) UserColors() []string { return h.Value("userColors").([]string) }

// SetUserColors sets the color-wheel presets.
func (h *ConfigHandler) SetUserColors(v []string) error { return h.SetValue("userColors", v) }

// FontFamily is the annotation text font. Empty means the system default.
func (h *ConfigHandler) FontFamily() string { return h.Value("fontFamily").(string) }

// SetFontFamily sets the annotation text font.
func (h *ConfigHandler) SetFontFamily(v string) error { return h.SetValue("fontFamily", v) }

// ShowHelp reports whether the capture overlay shows the help text.
func (h *ConfigHandler) ShowHelp() bool { return h.Value("showHelp").(bool) }

// SetShowHelp sets the capture help text visibility.
func (h *ConfigHandler) SetShowHelp(v bool) error { return h.SetValue("showHelp", v) }

// ShowSidePanelButton reports whether the side panel button is shown.
func (h *ConfigHandler) ShowSidePanelButton() bool {
	return h.Value("showSidePanelButton").(bool)
}

// SetShowSidePanelButton sets the side panel button visibility.
func (h *ConfigHandler) SetShowSidePanelButton(v bool) error {
	return h.SetValue("showSidePanelButton", v)
}

// ShowDesktopNotification reports whether desktop notifications are sent.
func (h *ConfigHandler) ShowDesktopNotification() bool {
	return h.Value("showDesktopNotification").(bool)
}

// SetShowDesktopNotification sets desktop notification delivery.
func (h *ConfigHandler) SetShowDesktopNotification(v bool) error {
	return h.SetValue("showDesktopNotification", v)
}

// DisabledTrayIcon reports whether the tray icon is hidden.
func (h *ConfigHandler) DisabledTrayIcon() bool { return h.Value("disabledTrayIcon").(bool) }

// SetDisabledTrayIcon sets tray icon hiding.
func (h *ConfigHandler) SetDisabledTrayIcon(v bool) error {
	return h.SetValue("disabledTrayIcon", v)
}

// DrawThickness is the annotation stroke width.
func (h *ConfigHandler) DrawThickness() int { return h.Value("drawThickness").(int) }

// SetDrawThickness sets the annotation stroke width.
func (h *ConfigHandler) SetDrawThickness(v int) error { return h.SetValue("drawThickness", v) }

// DrawFontSize is the annotation text size.
func (h *ConfigHandler) DrawFontSize() int { return h.Value("drawFontSize").(int) }

// SetDrawFontSize sets the annotation text size.
func (h *ConfigHandler) SetDrawFontSize(v int) error { return h.SetValue("drawFontSize", v) }

// KeepOpenAppLauncher reports whether the app launcher stays open after
// a capture is sent.
func (h *ConfigHandler) KeepOpenAppLauncher() bool {
	return h.Value("keepOpenAppLauncher").(bool)
}

// SetKeepOpenAppLauncher sets launcher persistence.
func (h *ConfigHandler) SetKeepOpenAppLauncher(v bool) error {
	return h.SetValue("keepOpenAppLauncher", v)
}

// CheckForUpdates reports whether update checks run.
func (h *ConfigHandler) CheckForUpdates() bool { return h.Value("checkForUpdates").(bool) }

// SetCheckForUpdates sets update checking.
func (h *ConfigHandler) SetCheckForUpdates(v bool) error {
	return h.SetValue("checkForUpdates", v)
}

// ShowStartupLaunchMessage reports whether the first-launch message shows.
func (h *ConfigHandler) ShowStartupLaunchMessage() bool {
	return h.Value("showStartupLaunchMessage").(bool)
}

// SetShowStartupLaunchMessage sets the first-launch message.
func (h *ConfigHandler) SetShowStartupLaunchMessage(v bool) error {
	return h.SetValue("showStartupLaunchMessage", v)
}

// ContrastOpacity is the dimming opacity outside the selection, 0 to 255.
func (h *ConfigHandler) ContrastOpacity() int { return h.Value("contrastOpacity").(int) }

// SetContrastOpacity sets the outside-selection dimming opacity.
func (h *ConfigHandler) SetContrastOpacity(v int) error {
	return h.SetValue("contrastOpacity", v)
}

// CopyAndCloseAfterUpload reports whether an upload copies its URL and
// closes the window.
func (h *ConfigHandler) CopyAndCloseAfterUpload() bool {
	return h.Value("copyAndCloseAfterUpload").(bool)
}

// SetCopyAndCloseAfterUpload sets post-upload behavior.
func (h *ConfigHandler) SetCopyAndCloseAfterUpload(v bool) error {
	return h.SetValue("copyAndCloseAfterUpload", v)
}

// HistoryConfirmationToDelete reports whether deleting history entries
// asks for confirmation.
func (h *ConfigHandler) HistoryConfirmationToDelete() bool {
	return h.Value("historyConfirmationToDelete").(bool)
}

// SetHistoryConfirmationToDelete sets history deletion confirmation.
func (h *ConfigHandler) SetHistoryConfirmationToDelete(v bool) error {
	return h.SetValue("historyConfirmationToDelete", v)
}

// UploadHistoryMax is the maximum retained upload history entries.
func (h *ConfigHandler) UploadHistoryMax() int { return h.Value("uploadHistoryMax").(int) }

// SetUploadHistoryMax sets the upload history cap.
func (h *ConfigHandler) SetUploadHistoryMax(v int) error {
	return h.SetValue("uploadHistoryMax", v)
}

// SaveAfterCopy reports whether a copy also saves to disk.
func (h *ConfigHandler) SaveAfterCopy() bool { return h.Value("saveAfterCopy").(bool) }

// SetSaveAfterCopy sets save-after-copy.
func (h *ConfigHandler) SetSaveAfterCopy(v bool) error { return h.SetValue("saveAfterCopy", v) }

// CopyPathAfterSave reports whether a save copies the file path.
func (h *ConfigHandler) CopyPathAfterSave() bool { return h.Value("copyPathAfterSave").(bool) }

// SetCopyPathAfterSave sets copy-path-after-save.
func (h *ConfigHandler) SetCopyPathAfterSave(v bool) error {
	return h.SetValue("copyPathAfterSave", v)
}

// UseJpgForClipboard reports whether clipboard images are JPEG encoded.
func (h *ConfigHandler) UseJpgForClipboard() bool {
	return h.Value("useJpgForClipboard").(bool)
}

// SetUseJpgForClipboard sets clipboard JPEG encoding.
func (h *ConfigHandler) SetUseJpgForClipboard(v bool) error {
	return h.SetValue("useJpgForClipboard", v)
}

// IgnoreUpdateToVersion is the version string update checks skip.
func (h *ConfigHandler) IgnoreUpdateToVersion() string {
	return h.Value("ignoreUpdateToVersion").(string)
}

// SetIgnoreUpdateToVersion sets the skipped update version.
func (h *ConfigHandler) SetIgnoreUpdateToVersion(v string) error {
	return h.SetValue("ignoreUpdateToVersion", v)
}

// UndoLimit is the annotation undo stack depth.
func (h *ConfigHandler) UndoLimit() int { return h.Value("undoLimit").(int) }

// SetUndoLimit sets the annotation undo stack depth.
func (h *ConfigHandler) SetUndoLimit(v int) error { return h.SetValue("undoLimit", v) }

// Buttons is the visible capture toolbar button set.
func (h *ConfigHandler) Buttons() []string { return h.Value("buttons").([]string) }

// SetButtons sets the visible capture toolbar buttons.
func (h *ConfigHandler) SetButtons(v []string) error { return h.SetValue("buttons", v) }

// StartupLaunch reports whether quickgrab starts with the session.
func (h *ConfigHandler) StartupLaunch() bool { return h.Value("startupLaunch").(bool) }

// SetStartupLaunch sets session autostart.
func (h *ConfigHandler) SetStartupLaunch(v bool) error { return h.SetValue("startupLaunch", v) }

// WindowMode is how the capture window is presented.
func (h *ConfigHandler) WindowMode() string { return h.Value("windowMode").(string) }

// SetWindowMode sets the capture window presentation.
func (h *ConfigHandler) SetWindowMode(v string) error { return h.SetValue("windowMode", v) }
