package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mrlokans/buzzwords/internal/audit"
	auditrepo "github.com/mrlokans/buzzwords/internal/database/audit"
	"github.com/mrlokans/buzzwords/internal/entities"
)

// AuditLogCommand prints recent audit events.
type AuditLogCommand struct {
	storeFlags
	Username  string
	EventType string
	Limit     int

	Out io.Writer
}

func NewAuditLogCommand() *AuditLogCommand {
	return &AuditLogCommand{Out: os.Stdout}
}

func (cmd *AuditLogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("audit-log", flag.ContinueOnError)

	cmd.storeFlags.register(fs)
	fs.StringVar(&cmd.Username, "user", "", "Only show events for this username")
	fs.StringVar(&cmd.EventType, "type", "", "Only show events of this type: auth, word, bookmark or maintenance")
	fs.IntVar(&cmd.Limit, "limit", 50, "Maximum number of events to show")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s audit-log [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show the most recent audit events, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch entities.AuditEventType(cmd.EventType) {
	case "", entities.AuditEventAuth, entities.AuditEventWord, entities.AuditEventBookmark, entities.AuditEventMaintenance:
	default:
		return fmt.Errorf("unknown event type %q", cmd.EventType)
	}
	if cmd.Limit < 1 {
		return fmt.Errorf("-limit must be positive")
	}
	return nil
}

func (cmd *AuditLogCommand) Run() error {
	db, err := cmd.open()
	if err != nil {
		return err
	}
	defer db.Close()

	service := audit.NewService(auditrepo.NewRepository(db.DB), nil)
	ctx := context.Background()

	var (
		events []entities.AuditEvent
		total  int64
	)
	if cmd.EventType != "" {
		events, total, err = service.GetEventsByType(ctx, entities.AuditEventType(cmd.EventType), cmd.Username, cmd.Limit, 0)
	} else {
		events, total, err = service.GetEvents(ctx, cmd.Username, cmd.Limit, 0)
	}
	if err != nil {
		return fmt.Errorf("failed to read audit events: %w", err)
	}

	w := tabwriter.NewWriter(cmd.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tACTION\tUSER\tSTATUS\tDETAIL")
	for _, e := range events {
		detail := e.Description
		if e.ErrorMsg != "" {
			detail = e.ErrorMsg
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format(time.RFC3339), e.EventType, e.Action, e.Username, e.Status, detail)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "\nShowing %d of %d events\n", len(events), total)
	return nil
}
