// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tstack plays a piece queue and reserve stack session in the terminal.
//
//	tstack [-level master] [-seed N] [-journal path] [-color]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"

	"code.hybscloud.com/tstack"
	"code.hybscloud.com/tstack/internal/console"
	"code.hybscloud.com/tstack/internal/journal"
	"github.com/gdamore/tcell/v2"
)

var (
	levelFlag   = flag.String("level", "master", "feature level: novice, adventurer, master")
	seedFlag    = flag.Int64("seed", 0, "shape generator seed (0 seeds from the clock)")
	journalFlag = flag.String("journal", "", "append outcomes as JSON lines to this file")
	colorFlag   = flag.Bool("color", false, "draw pieces in per-shape colors")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tstack: ")
	flag.Parse()

	level, err := tstack.ParseLevel(*levelFlag)
	if err != nil {
		log.Fatal(err)
	}

	b := tstack.New().Level(level)
	if *seedFlag != 0 {
		b.Source(rand.NewSource(*seedFlag))
	}
	session, err := b.Build()
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	cfg := console.Config{Color: *colorFlag}
	if *journalFlag != "" {
		f, err := os.OpenFile(*journalFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer f.Close()
		cfg.Journal = journal.NewWriter(f)
	}

	if err := run(session, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(session *tstack.Session, cfg console.Config) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before anything reaches stderr
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "tstack crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	return console.New(screen, session, cfg).Run()
}
