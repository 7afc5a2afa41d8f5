// Package translate renders the machine's user-facing text in the host
// locale: the trap prompt and halt notice, image-loading failures, and the
// fatal decode and trap errors. Guest program output is raw bytes and never
// passes through here.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lc3: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() template in the matched locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
