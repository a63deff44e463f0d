//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"zedit/commander"
	"zedit/editor"
	"zedit/screen"
	zedit "zedit/types"
)

var (
	version = "dev"
	script  string
)

var rootCmd = &cobra.Command{
	Use:     "zedit [file|directory]",
	Short:   "A modal terminal text editor",
	Long: `A modal text editor for the terminal with vi-style keys, syntax
highlighting, a built-in file browser, and an embedded lisp for scripting.

Opening a directory starts the file browser. Opening a file that doesn't
exist yet starts an empty buffer with that name.

Normal mode:
  h j k l, arrows     move the cursor
  w b                 next or previous word
  0 $ g G             line start, line end, first line, last line
  i I a A o O         enter insert mode
  x dd                delete a character or a line
  / ? n N             search forward or backward, repeat
  e                   browse the current file's directory
  ( ... )             evaluate a lisp expression

Commands:
  :w [file]  :q  :q!  :wq  :e [path]  :<line>  :eval  :help

Browser:
  j k           move    Enter l   open    h Backspace   parent
  . toggle hidden       r refresh         q Esc         close`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runEditor,
}

func init() {
	rootCmd.Flags().StringVar(&script, "eval", "",
		"evaluate a lisp script against the editor and exit")
}

func runEditor(cmd *cobra.Command, args []string) error {
	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if len(args) == 1 {
		if err := e.OpenPath(args[0]); err != nil {
			return err
		}
		if e.GetBrowser() != nil {
			c.SetMode(zedit.ModeBrowse)
		}
	}

	if script != "" {
		// Run a script and exit.
		result := c.ParseEvalFile(script)
		if result != "" {
			fmt.Println(result)
		}
		return nil
	}

	// The screen manages the display.
	s := screen.NewScreen()
	if s == nil {
		return errors.New("unable to open the terminal")
	}
	defer s.Close()

	// Keystrokes own the terminal, so logging goes to a file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.zeditlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
