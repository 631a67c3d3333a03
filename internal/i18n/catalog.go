// Package i18n is the localization collaborator: format(key, args...)
// returns a human-readable message. The engine's error messages always go
// through Format, which renders them from the English catalog below; no
// other language is registered and the printer is fixed to English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	register(language.English, catalog)
}

// catalog holds the default (English) translations for every key the
// engine package references.
var catalog = map[string]string{
	"eventNotResumable":         "event cannot be resumed from state %[1]s",
	"eventNotSuspendable":       "event cannot be suspended from state %[1]s",
	"outOfEvents":               "no events remain on the main queue",
	"eventNotSchedulable":       "event cannot be scheduled: %[1]s",
	"eventAlreadyScheduled":     "event is already scheduled: %[1]s",
	"eventNotDescheduled":       "event is not active on this queue: %[1]s",
	"counterUnderflow":          "suspension counter underflow",
	"negativeOrNaNTime":         "time value must be non-negative and not NaN, got %[1]s",
	"queueCycle":                "hierarchical queue %[1]s would become its own ancestor",
	"clockWentBackwards":        "resume observed on %[1]s at a clock value earlier than its suspend instant",
	"lifecycleInvalidTransition": "lifecycle cannot transition: %[1]s",
	"infinitySymbol":            "+Inf",
}

func register(tag language.Tag, entries map[string]string) {
	for key, translation := range entries {
		message.SetString(tag, key, translation)
	}
}

var printer = message.NewPrinter(language.English)

// Format returns the human-readable message registered under key, with
// args interpolated the way message.Printer.Sprintf would. Unknown keys
// are returned verbatim with args appended, so a missing catalog entry
// degrades to something readable rather than failing.
func Format(key string, args ...interface{}) string {
	return printer.Sprintf(key, args...)
}
