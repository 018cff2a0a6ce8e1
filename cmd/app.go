// Package cmd implements the CLI application to keep the books of a small
// fruit-trading business.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sardorm/fruitbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&purchaseCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&warehouseCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&contactsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", ".meva", "Path to the folder holding the business data files")

// testingNowEnv overrides the transaction clock, for reproducible runs in
// documentation tests.
const testingNowEnv = "MEVA_TESTING_NOW"

// appNow returns the instant the app considers "now". The testing override
// makes documentation runs reproducible.
func appNow() time.Time {
	if v := os.Getenv(testingNowEnv); v != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

// LoadLedger loads the whole business state from the app data path. A
// missing folder loads as an empty ledger.
func LoadLedger() (*fruitbook.Ledger, error) {
	ledger, err := fruitbook.Load(fruitbook.NewDirStore(*dataPath))
	if err != nil {
		return nil, err
	}
	ledger.SetClock(appNow)
	return ledger, nil
}

// SaveLedger persists the whole business state back to the app data path.
func SaveLedger(ledger *fruitbook.Ledger) error {
	return fruitbook.Save(fruitbook.NewDirStore(*dataPath), ledger)
}

// printMarkdown renders markdown for the terminal and prints it. On
// rendering errors the raw markdown is printed instead.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
