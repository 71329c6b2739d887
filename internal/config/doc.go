// Package config is the typed, self-validating settings store for
// quickgrab.
//
// A ConfigHandler fronts a single settings file with two groups:
// [General] options and [Shortcuts] bindings. Every recognized key has a
// ValueHandler that owns its default, validation and raw/typed
// conversions, so reads never fail: a missing or malformed value
// degrades to the factory default and the damage is surfaced through
// the validation pipeline instead.
//
// The pipeline (CheckForErrors) aggregates three independent stages:
// unrecognized groups and keys, shortcut chord collisions, and value
// semantics including cross-key rules. Its verdict drives a
// process-shared error state; transitions emit error and errorResolved
// notifications, and external edits to the file, observed through an
// fsnotify directory watch, re-drive the pipeline and additionally
// emit fileChanged. The handler's own writes arm a one-shot suppression
// so they are not reported back as external damage.
package config
