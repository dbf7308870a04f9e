package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/suggest"
	"github.com/hupe1980/suggest/blobstore"
	"github.com/hupe1980/suggest/codec"
	"github.com/hupe1980/suggest/compress"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// Exit codes. Usage and other failures share exitFailure so a caller can
// tell them apart from a word that is not indexed.
const (
	exitAbsent   = 1
	exitNotFound = 2
	exitCorrupt  = 3
	exitFailure  = 4
)

// app carries the per-run state shared by the commands.
type app struct {
	logger *suggest.Logger
	codec  codec.Codec
	loc    location
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := newApp(stdin, stdout, stderr).RunContext(ctx, args)
	if err == nil {
		return 0
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := err.Error(); msg != "" {
			_, _ = fmt.Fprintln(stderr, msg)
		}
		return ec.ExitCode()
	}
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	return exitFailure
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	a := &app{}

	return &cli.App{
		Name:      "suggest",
		Usage:     "Build and query autocompletion indexes",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are mapped by run.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "index",
				Aliases: []string{"i"},
				Value:   suggest.DefaultIndexName,
				Usage:   "index location: a file path, s3://bucket/key or minio://endpoint/bucket/key",
				EnvVars: []string{"SUGGEST_INDEX"},
			},
			&cli.StringFlag{
				Name:    "codec",
				Value:   codec.Default.Name(),
				Usage:   "record codec (" + strings.Join(codec.Names(), ", ") + ")",
				EnvVars: []string{"SUGGEST_CODEC"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "minimum log level (debug, info, warn, error)",
				EnvVars: []string{"SUGGEST_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "log format (text, json)",
				EnvVars: []string{"SUGGEST_LOG_FORMAT"},
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Build an index from newline-separated words",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "words",
						Aliases: []string{"w"},
						Usage:   "read words from `FILE` (repeatable); reads stdin when omitted",
					},
					&cli.StringFlag{
						Name:    "compression",
						Aliases: []string{"c"},
						Value:   compress.Default.String(),
						Usage:   "compression (bzip2, zstd, lz4, gzip, none)",
						EnvVars: []string{"SUGGEST_COMPRESSION"},
					},
				},
				Action: a.build,
			},
			{
				Name:      "suggest",
				Usage:     "Print the indexed words starting with PREFIX",
				ArgsUsage: "PREFIX",
				Action:    a.suggest,
			},
			{
				Name:      "contains",
				Usage:     "Exit 0 if WORD is indexed, 1 if it is not",
				ArgsUsage: "WORD",
				Action:    a.contains,
			},
			{
				Name:   "tree",
				Usage:  "Print the index as a tree",
				Action: a.tree,
			},
			{
				Name:   "stats",
				Usage:  "Print index statistics",
				Action: a.stats,
			},
			{
				Name:      "list",
				Usage:     "List the blobs next to the index whose names start with PREFIX",
				ArgsUsage: "[PREFIX]",
				Action:    a.list,
			},
			{
				Name:   "delete",
				Usage:  "Delete the index",
				Action: a.delete,
			},
		},
	}
}

func (a *app) before(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q", c.String("log-level"))
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.String("log-format")) {
	case "text":
		a.logger = suggest.NewLogger(slog.NewTextHandler(c.App.ErrWriter, opts))
	case "json":
		a.logger = suggest.NewLogger(slog.NewJSONHandler(c.App.ErrWriter, opts))
	default:
		return fmt.Errorf("invalid log format %q", c.String("log-format"))
	}

	cd, ok := codec.ByName(c.String("codec"))
	if !ok {
		return fmt.Errorf("invalid codec %q", c.String("codec"))
	}
	a.codec = cd

	loc, err := parseLocation(c.String("index"))
	if err != nil {
		return err
	}
	a.loc = loc
	return nil
}

func (a *app) build(c *cli.Context) error {
	ct, err := compress.ParseType(c.String("compression"))
	if err != nil {
		return err
	}

	words, err := readWords(c.Context, c.App.Reader, c.StringSlice("words"))
	if err != nil {
		return err
	}

	store, name, err := a.loc.store(c.Context)
	if err != nil {
		return err
	}

	idx := suggest.Build(words, suggest.WithLogger(a.logger), suggest.WithCodec(a.codec), suggest.WithCompression(ct))
	n, err := idx.Save(c.Context, store, name)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.App.Writer, "Built index of size %s (%s)\n",
		humanize.Comma(int64(idx.Size())), humanize.Bytes(uint64(n)))
	return nil
}

func (a *app) suggest(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("suggest: expected exactly one PREFIX argument", exitFailure)
	}

	idx, err := a.open(c)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(c.App.Writer)
	for _, word := range idx.Suggest(c.Args().First()) {
		_, _ = fmt.Fprintln(w, word)
	}
	return w.Flush()
}

func (a *app) contains(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("contains: expected exactly one WORD argument", exitFailure)
	}

	idx, err := a.open(c)
	if err != nil {
		return err
	}
	if !idx.Contains(c.Args().First()) {
		return cli.Exit("", exitAbsent)
	}
	return nil
}

func (a *app) tree(c *cli.Context) error {
	idx, err := a.open(c)
	if err != nil {
		return err
	}
	if s := idx.String(); s != "" {
		_, _ = fmt.Fprintln(c.App.Writer, s)
	}
	return nil
}

func (a *app) stats(c *cli.Context) error {
	store, name, err := a.loc.store(c.Context)
	if err != nil {
		return err
	}

	data, err := blobstore.Get(c.Context, store, name)
	if err != nil {
		return a.openError(err)
	}
	ct, _ := compress.Detect(data)

	idx, err := suggest.Read(bytes.NewReader(data),
		suggest.WithLogger(a.logger.WithIndex(a.loc.String())), suggest.WithCodec(a.codec))
	if err != nil {
		return a.openError(err)
	}

	stats := idx.Stats()
	_, _ = fmt.Fprintf(c.App.Writer, "Location:    %s\n", a.loc)
	_, _ = fmt.Fprintf(c.App.Writer, "Words:       %s\n", humanize.Comma(int64(stats.Words)))
	_, _ = fmt.Fprintf(c.App.Writer, "Nodes:       %s\n", humanize.Comma(int64(stats.Nodes)))
	_, _ = fmt.Fprintf(c.App.Writer, "Stored size: %s\n", humanize.Bytes(uint64(len(data))))
	_, _ = fmt.Fprintf(c.App.Writer, "Compression: %s\n", ct)
	return nil
}

func (a *app) list(c *cli.Context) error {
	if c.NArg() > 1 {
		return cli.Exit("list: expected at most one PREFIX argument", exitFailure)
	}

	store, _, err := a.loc.store(c.Context)
	if err != nil {
		return err
	}
	names, err := store.List(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	w := bufio.NewWriter(c.App.Writer)
	for _, name := range names {
		_, _ = fmt.Fprintln(w, name)
	}
	return w.Flush()
}

// delete removes the index. A missing index is not an error.
func (a *app) delete(c *cli.Context) error {
	store, name, err := a.loc.store(c.Context)
	if err != nil {
		return err
	}
	if err := store.Delete(c.Context, name); err != nil {
		return err
	}
	a.logger.InfoContext(c.Context, "index deleted", "index", a.loc.String())
	return nil
}

func (a *app) open(c *cli.Context) (*suggest.Index, error) {
	store, name, err := a.loc.store(c.Context)
	if err != nil {
		return nil, err
	}

	idx, err := suggest.Open(c.Context, store, name, suggest.WithLogger(a.logger), suggest.WithCodec(a.codec))
	if err != nil {
		return nil, a.openError(err)
	}
	return idx, nil
}

// openError maps load failures to exit codes. A missing index is silent so
// completion hooks stay quiet before the first build.
func (a *app) openError(err error) error {
	switch {
	case errors.Is(err, suggest.ErrNotFound), errors.Is(err, blobstore.ErrNotFound):
		return cli.Exit("", exitNotFound)
	case errors.Is(err, suggest.ErrCorrupt):
		return cli.Exit(fmt.Sprintf("Error: index %s is corrupt, rebuild it: %v", a.loc, err), exitCorrupt)
	default:
		return err
	}
}

// readWords reads newline-separated words from files, concurrently and in
// argument order, or from stdin when no files are given. Surrounding
// whitespace is trimmed and blank lines are skipped.
func readWords(ctx context.Context, stdin io.Reader, files []string) ([]string, error) {
	if len(files) == 0 {
		return scanWords(stdin)
	}

	results := make([][]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			words, err := scanWords(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			results[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var words []string
	for _, ws := range results {
		words = append(words, ws...)
	}
	return words, nil
}

func scanWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words, sc.Err()
}
