package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/focuscatcher/internal/config"
	"github.com/tomz197/focuscatcher/internal/loop"
	"github.com/tomz197/focuscatcher/internal/progress"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		Reporter: progress.NewReporter(config.GetEnv("FOCUS_API_URL", "")),
	}
	store, err := progress.NewFileStore(config.GetEnv("FOCUS_DATA_DIR", progress.DefaultDir()))
	if err != nil {
		log.Printf("progress persistence disabled: %v", err)
	} else {
		opts.Store = store
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
