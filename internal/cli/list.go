package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sacredsteps/sacredsteps/internal/config"
	"github.com/sacredsteps/sacredsteps/internal/entities"
)

// ListCommand prints stored verses in canonical order.
type ListCommand struct {
	DatabasePath string
	Book         string
	ShowIDs      bool

	Out io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{Out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the verse database file")
	fs.StringVar(&cmd.Book, "book", "", "Only list verses of this book (exact name)")
	fs.BoolVar(&cmd.ShowIDs, "ids", false, "Print verse IDs")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print stored verses in canonical reading order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	repo, closeStore, err := openVerseStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	var verses []entities.Verse
	if cmd.Book != "" {
		verses, err = repo.GetByBook(cmd.Book)
	} else {
		verses, err = repo.GetAll()
	}
	if err != nil {
		return fmt.Errorf("failed to load verses: %w", err)
	}

	if len(verses) == 0 {
		fmt.Fprintln(cmd.Out, "No verses found")
		return nil
	}

	for _, v := range verses {
		if cmd.ShowIDs {
			fmt.Fprintf(cmd.Out, "%s\t%s\t%s\n", v.ID, v.Reference(), v.Text)
			continue
		}
		fmt.Fprintf(cmd.Out, "%s\t%s\n", v.Reference(), v.Text)
	}
	fmt.Fprintf(cmd.Out, "\n%d verses\n", len(verses))
	return nil
}
