package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	yu "github.com/ravern/yu"
)

const (
	banner      = "Yu 0.1.0"
	goodbye     = "Bye!"
	prompt      = "> "
	historyFile = ".yu_history"
)

func main() {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	ip := yu.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Println("error: failed to read line")
			continue
		}

		if yu.IsBlank(line) {
			continue
		}
		ln.AppendHistory(line)

		v, err := ip.EvalSource(line)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			continue
		}
		fmt.Println(yu.FormatExpr(v))
	}

	fmt.Println(goodbye)
}
