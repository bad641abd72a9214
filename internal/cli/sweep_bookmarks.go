package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/buzzwords/internal/database/bookmarks"
	"github.com/mrlokans/buzzwords/internal/tasks"
)

// SweepBookmarksCommand removes bookmarks whose word has been deleted.
type SweepBookmarksCommand struct {
	storeFlags
	DryRun bool

	Out io.Writer
}

func NewSweepBookmarksCommand() *SweepBookmarksCommand {
	return &SweepBookmarksCommand{Out: os.Stdout}
}

func (cmd *SweepBookmarksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sweep-bookmarks", flag.ContinueOnError)

	cmd.storeFlags.register(fs)
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Only count orphan bookmarks, do not delete them")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sweep-bookmarks [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Remove bookmarks that reference words which no longer exist.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SweepBookmarksCommand) Run() error {
	db, err := cmd.open()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := tasks.SweepOrphanBookmarks(context.Background(), bookmarks.NewRepository(db.DB), cmd.DryRun)
	if err != nil {
		return err
	}

	if cmd.DryRun {
		fmt.Fprintf(cmd.Out, "DRY RUN: %d orphan bookmarks would be removed\n", n)
		return nil
	}
	fmt.Fprintf(cmd.Out, "Removed %d orphan bookmarks\n", n)
	return nil
}
