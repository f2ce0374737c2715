package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/kumarUjjawal/tinytindb"
	"github.com/kumarUjjawal/tinytindb/config"
	"github.com/kumarUjjawal/tinytindb/logger"
	"github.com/kumarUjjawal/tinytindb/pagedir"
	"github.com/kumarUjjawal/tinytindb/repl"
	"go.uber.org/zap"
)

// interruptReader treat ^C on an empty line as the end of input
type interruptReader struct {
	rl *readline.Instance
}

func (ir *interruptReader) Readline() (string, error) {
	for {
		line, err := ir.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func newPageDir(kind string) pagedir.PageDir {
	if kind == config.PageDirBTree {
		return pagedir.NewBTree(0)
	}
	return pagedir.NewArray()
}

func run(args []string) error {
	cfg, err := config.Parse(flag.NewFlagSet("tinytindb", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	zlogger, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = zlogger.Sync() }()

	table := tinytindb.NewTable(
		tinytindb.WithPageDir(newPageDir(cfg.PageDir)),
		tinytindb.WithLogger(zlogger.Named("table")),
	)
	defer table.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	zlogger.Info("session started", zap.String("page_dir", cfg.PageDir))
	session := repl.NewSession(table, rl.Stdout(), zlogger.Named("repl"))
	return session.Run(&interruptReader{rl: rl})
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
