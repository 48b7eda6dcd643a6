// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command diffscope computes diffs between two files, either as a one-shot CLI comparison or, with
// -serve, as the HTTP host for the viewer service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diffscope.dev/diffscope"
	"diffscope.dev/diffscope/cmd/diffscope/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "diffscope:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("diffscope", flag.ExitOnError)
	var (
		serve        = fs.Bool("serve", false, "run the HTTP viewer service instead of diffing files")
		addr         = fs.String("addr", ":8080", "address to listen on with -serve")
		contextLines = fs.Int("context", diffscope.DefaultOptions().ContextLines, "number of context lines around each change")
		ignoreCase   = fs.Bool("ignore-case", false, "ignore case differences when comparing lines")
		ignoreSpace  = fs.Bool("ignore-whitespace", false, "ignore leading/trailing whitespace differences")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *serve {
		return runServer(*addr)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return errors.New("usage: diffscope [flags] <old-file> <new-file>")
	}
	return runDiff(rest[0], rest[1], *contextLines, *ignoreCase, *ignoreSpace)
}

func runDiff(oldPath, newPath string, contextLines int, ignoreCase, ignoreSpace bool) error {
	oldBytes, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", oldPath, err)
	}
	newBytes, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", newPath, err)
	}

	opts := []diffscope.Option{diffscope.WithContextLines(contextLines)}
	if ignoreCase {
		opts = append(opts, diffscope.WithIgnoreCase())
	}
	if ignoreSpace {
		opts = append(opts, diffscope.WithIgnoreWhitespace())
	}
	opts = append(opts, diffscope.WithLanguage(diffscope.DetectLanguageHint(newPath)))

	result, err := diffscope.ComputeDiff(string(oldBytes), string(newBytes), opts...)
	var decorationErr *diffscope.DecorationError
	if err != nil && !errors.As(err, &decorationErr) {
		return err
	}
	if decorationErr != nil {
		fmt.Fprintln(os.Stderr, "diffscope: decoration incomplete:", decorationErr)
	}

	printUnified(os.Stdout, result)
	return nil
}

func printUnified(w *os.File, result diffscope.DiffResult) {
	for _, h := range result.Hunks {
		fmt.Fprintln(w, h.Header)
		for _, c := range h.Changes {
			switch c.Tag {
			case diffscope.Unchanged:
				fmt.Fprintf(w, " %s\n", c.Content)
			case diffscope.Removed:
				fmt.Fprintf(w, "-%s\n", c.Content)
			case diffscope.Added:
				fmt.Fprintf(w, "+%s\n", c.Content)
			case diffscope.Modified:
				fmt.Fprintf(w, "-%s\n+%s\n", c.PriorContent, c.Content)
			}
		}
	}
}

func runServer(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Printf("diffscope: listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
