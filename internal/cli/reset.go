package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sacredsteps/sacredsteps/internal/config"
)

// ResetCommand deletes every stored verse.
type ResetCommand struct {
	DatabasePath string
	Confirm      bool

	Out io.Writer
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{Out: os.Stdout}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the verse database file")
	fs.BoolVar(&cmd.Confirm, "yes", false, "Confirm deletion of all verses")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset -yes [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete every verse from the store.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cmd.Confirm {
		return fmt.Errorf("refusing to delete all verses without -yes")
	}

	return nil
}

func (cmd *ResetCommand) Run() error {
	repo, closeStore, err := openVerseStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	deleted, err := repo.DeleteAll()
	if err != nil {
		return fmt.Errorf("failed to delete verses: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Deleted %d verses\n", deleted)
	return nil
}
