package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sacredsteps/sacredsteps/internal/config"
	"github.com/sacredsteps/sacredsteps/internal/entities"
)

// AddCommand stores a single verse.
type AddCommand struct {
	DatabasePath string
	Book         string
	Chapter      int
	VerseNumber  int
	Text         string
	BookIndex    int

	Out io.Writer
}

func NewAddCommand() *AddCommand {
	return &AddCommand{Out: os.Stdout}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the verse database file")
	fs.StringVar(&cmd.Book, "book", "", "Book name, e.g. Genesis (required)")
	fs.IntVar(&cmd.Chapter, "chapter", 0, "Chapter number")
	fs.IntVar(&cmd.VerseNumber, "verse", 0, "Verse number within the chapter")
	fs.StringVar(&cmd.Text, "text", "", "Verse text")
	fs.IntVar(&cmd.BookIndex, "index", 0, "Canonical position of the book, e.g. 1 for Genesis")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -book <name> -chapter <n> -verse <n> -text <text> -index <n> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store a single verse.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s add -book Genesis -chapter 1 -verse 1 -index 1 -text \"In the beginning...\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Book == "" {
		return fmt.Errorf("required flag -book not provided")
	}

	return nil
}

func (cmd *AddCommand) Run() error {
	repo, closeStore, err := openVerseStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	verse := entities.NewVerse(cmd.Book, cmd.Chapter, cmd.VerseNumber, cmd.Text, cmd.BookIndex)
	if err := repo.Create(verse); err != nil {
		return fmt.Errorf("failed to save verse: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Saved %s (%s)\n", verse.Reference(), verse.ID)
	return nil
}
