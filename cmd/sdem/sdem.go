/*

A simple CLI app to parse and display information about
a Source-engine demo file passed as a CLI argument.

*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/demparser"
)

const (
	appName    = "sdem"
	appVersion = "v1.2.0"
	appAuthor  = "Andras Belicza"
	appHome    = "https://github.com/icza/sdem"
)

const (
	ExitCodeMissingArguments   = 1
	ExitCodeFailedToParseDemo  = 2
	ExitCodeFailedToCreateFile = 3
)

// Flag variables
var (
	version = flag.Bool("version", false, "print version info and exit")

	header   = flag.Bool("header", true, "print demo header")
	messages = flag.Bool("messages", false, "print all top-level messages")
	events   = flag.Bool("events", false, "print game events")
	chat     = flag.Bool("chat", false, "print chat messages")
	computed = flag.Bool("computed", true, "print computed / derived data")
	outFile  = flag.String("outfile", "", "optional output file name")

	indent = flag.Bool("indent", true, "use indentation when formatting output")
)

func main() {
	flag.Parse()

	if *version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	d, err := demparser.ParseFile(args[0])
	if err != nil {
		fmt.Printf("Failed to parse demo: %v\n", err)
		os.Exit(ExitCodeFailedToParseDemo)
	}

	var destination = os.Stdout

	if *outFile != "" {
		foutput, err := os.Create(*outFile)
		if err != nil {
			fmt.Printf("Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToCreateFile)
		}
		defer func() {
			if err := foutput.Close(); err != nil {
				panic(err)
			}
		}()

		destination = foutput
	}

	if *computed || *chat {
		d.Compute()
	}

	// custom holds any data derived for the output that is not part of
	// dem.Demo:
	custom := map[string]interface{}{}

	if *events {
		var evs []map[string]interface{}
		for _, m := range d.Messages {
			pk, ok := m.(*dem.Packet)
			if !ok {
				continue
			}
			for _, ev := range pk.Events {
				evs = append(evs, map[string]interface{}{
					"Tick":  pk.Tick,
					"Name":  ev.EventName(),
					"Event": ev,
				})
			}
		}
		custom["Events"] = evs
	}

	if *chat && d.Computed != nil {
		custom["Chat"] = d.Computed.ChatMessages
	}

	// Zero values in demo the user does not wish to see:
	if !*header {
		d.Header = nil
	}
	if !*messages {
		d.Messages = nil
	}
	if !*computed {
		d.Computed = nil
	} else if d.Computed != nil && !*chat {
		d.Computed.ChatMessages = nil
	}
	d.SendTables = nil
	d.Classes = nil
	d.EventDefs = nil
	d.StringTables = nil

	enc := json.NewEncoder(destination)

	if *indent {
		enc.SetIndent("", "  ")
	}

	var valueToEncode interface{} = d

	// If there are custom data, wrap (embed) the demo in a struct that
	// holds the custom data too:
	if len(custom) > 0 {
		valueToEncode = struct {
			*dem.Demo
			Custom map[string]interface{}
		}{d, custom}
	}

	if err := enc.Encode(valueToEncode); err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
	}
}

func printVersion() {
	fmt.Println(appName, "version:", appVersion)
	fmt.Println("Parser version:", demparser.Version)
	fmt.Println("Platform:", runtime.GOOS, runtime.GOARCH)
	fmt.Println("Built with:", runtime.Version())
	fmt.Println("Author:", appAuthor)
	fmt.Println("Home page:", appHome)
}

func printUsage() {
	fmt.Println("Usage:")
	name := os.Args[0]
	fmt.Printf("\t%s [FLAGS] demofile.dem\n", name)
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}
