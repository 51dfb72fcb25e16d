package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/unkn0wn-root/filecache"
	"github.com/unkn0wn-root/filecache/config"
	"github.com/unkn0wn-root/filecache/todo"
)

const dayLayout = "2006-01-02"

type app struct {
	cfg config.Config
	log filecache.Logger
}

func newApp(cfg config.Config, log filecache.Logger) *cli.Command {
	a := &app{cfg: cfg, log: log}
	return &cli.Command{
		Name:  "todocache",
		Usage: "manage a to-do list file",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "add an item",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Required: true},
					&cli.StringFlag{Name: "importance", Aliases: []string{"i"}, Value: string(todo.Basic), Usage: "low, basic or important"},
					&cli.StringFlag{Name: "deadline", Aliases: []string{"d"}, Usage: "day as " + dayLayout},
				},
				Action: a.add,
			},
			{
				Name:      "rm",
				Usage:     "remove items by id",
				ArgsUsage: "ID...",
				Action:    a.remove,
			},
			{
				Name:   "ls",
				Usage:  "list items grouped by deadline",
				Action: a.list,
			},
			{
				Name:  "convert",
				Usage: "rewrite the file in another format",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Required: true, Usage: "json or csv"},
					&cli.StringFlag{Name: "out", Usage: "target file name (default: same name, new extension)"},
				},
				Action: a.convert,
			},
		},
	}
}

// open loads the configured file; a missing file yields an empty cache.
func (a *app) open(ctx context.Context) (*filecache.Cache[todo.Item], filecache.Format, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, 0, err
	}
	opts.Logger = a.log
	format, err := a.cfg.FileFormat()
	if err != nil {
		return nil, 0, err
	}

	c := filecache.New[todo.Item](opts)
	if err := c.Load(ctx, a.cfg.File, format); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, 0, err
	}
	return c, format, nil
}

func (a *app) add(ctx context.Context, cmd *cli.Command) error {
	imp, err := todo.ParseImportance(cmd.String("importance"))
	if err != nil {
		return err
	}
	opts := []todo.Option{todo.WithImportance(imp)}
	if d := cmd.String("deadline"); d != "" {
		t, err := time.ParseInLocation(dayLayout, d, time.Local)
		if err != nil {
			return fmt.Errorf("deadline: %w", err)
		}
		opts = append(opts, todo.WithDeadline(t))
	}

	c, format, err := a.open(ctx)
	if err != nil {
		return err
	}
	item := todo.New(cmd.String("text"), opts...)
	c.Add(item)
	if err := c.Save(ctx, a.cfg.File, format); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, item.ID())
	return nil
}

func (a *app) remove(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("rm: at least one ID is required")
	}
	c, format, err := a.open(ctx)
	if err != nil {
		return err
	}
	for _, id := range cmd.Args().Slice() {
		if _, ok := c.Get(id); !ok {
			a.log.Warn("no such item", filecache.Fields{"id": id})
		}
		c.Remove(id)
	}
	return c.Save(ctx, a.cfg.File, format)
}

func (a *app) list(ctx context.Context, cmd *cli.Command) error {
	c, format, err := a.open(ctx)
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	for _, s := range todo.GroupByDeadline(c.Items(), time.Local) {
		fmt.Fprintln(w, s.Key)
		for _, it := range s.Items {
			printItem(w, it)
		}
	}

	data, err := c.Encode(format)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d items, %s as %s\n", c.Len(), humanize.Bytes(uint64(len(data))), format)
	return nil
}

func (a *app) convert(ctx context.Context, cmd *cli.Command) error {
	to, err := filecache.ParseFormat(cmd.String("to"))
	if err != nil {
		return err
	}
	c, _, err := a.open(ctx)
	if err != nil {
		return err
	}
	out := cmd.String("out")
	if out == "" {
		out = strings.TrimSuffix(a.cfg.File, filepath.Ext(a.cfg.File)) + "." + to.String()
	}
	if err := c.Save(ctx, out, to); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "wrote %d items to %s\n", c.Len(), out)
	return nil
}

func printItem(w io.Writer, it todo.Item) {
	mark := " "
	if it.Done {
		mark = "x"
	}
	line := fmt.Sprintf("  [%s] %s  %s", mark, it.ID(), it.Text)
	if it.Importance != todo.Basic {
		line += " (" + string(it.Importance) + ")"
	}
	fmt.Fprintln(w, line)
}
