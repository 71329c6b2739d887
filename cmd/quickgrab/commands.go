package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickgrab/quickgrab/internal/config"
)

// --- check ---

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the settings file and report every problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer handler.Close()

		if handler.CheckForErrors(os.Stderr) {
			return fmt.Errorf("%s", handler.ErrorMessage())
		}
		fmt.Println("Settings are valid.")
		return nil
	},
}

// --- list ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every recognized key with its effective value",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer handler.Close()

		fmt.Printf("[%s]\n", config.GroupGeneral)
		for _, key := range handler.RecognizedGeneralOptions() {
			fmt.Printf("%s = %s\n", key, formatValue(handler.Value(key)))
		}
		fmt.Printf("\n[%s]\n", config.GroupShortcuts)
		for _, name := range handler.RecognizedShortcutNames() {
			fmt.Printf("%s = %s\n", name, handler.Shortcut(name))
		}
		return nil
	},
}

// --- get ---

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer handler.Close()

		key := args[0]
		if !recognized(handler, key) {
			return fmt.Errorf("unrecognized key %q", key)
		}
		fmt.Println(formatValue(handler.Value(key)))
		return nil
	},
}

// --- set ---

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Validate and store a value for a key",
	Long: `Validate and store a value for a key.

Examples:
  quickgrab-settings set drawThickness 5
  quickgrab-settings set userColors "picker,#ff0000,#00ff00"
  quickgrab-settings set saveCapture Ctrl+Shift+S
  quickgrab-settings set saveCapture ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer handler.Close()

		key, raw := args[0], args[1]
		if !recognized(handler, key) {
			return fmt.Errorf("unrecognized key %q", key)
		}

		if isShortcut(handler, key) {
			ok, err := handler.SetShortcut(key, raw)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%q is already bound to another action", raw)
			}
			return nil
		}
		return handler.SetValue(key, coerce(handler.Value(key), raw))
	},
}

// --- reset ---

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore factory defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer handler.Close()

		if err := handler.SetDefaultSettings(); err != nil {
			return err
		}
		fmt.Println("Settings restored to factory defaults.")
		return nil
	},
}

func recognized(handler *config.ConfigHandler, key string) bool {
	for _, k := range handler.RecognizedGeneralOptions() {
		if k == key {
			return true
		}
	}
	return isShortcut(handler, key)
}

func isShortcut(handler *config.ConfigHandler, key string) bool {
	for _, k := range handler.RecognizedShortcutNames() {
		if k == key {
			return true
		}
	}
	return false
}

// coerce converts command-line text to the key's typed form, using the
// current value's type as the target. Values the conversion cannot
// parse pass through as-is so the key's handler reports the rejection.
func coerce(current any, raw string) any {
	switch current.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return raw
		}
		return b
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return raw
		}
		return n
	case []string:
		if strings.TrimSpace(raw) == "" {
			return []string{}
		}
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return raw
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case []string:
		return strings.Join(t, ",")
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}
