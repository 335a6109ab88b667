package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/notedeck/cmd"
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/workspace"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const listCommandLong = `List notes.

USAGE:
    notedeck list [OPTIONS]

OPTIONS:
    --archived           Show archived notes instead of active ones
    --tag <tag>          Only notes with this exact tag
    --search <query>     Only notes whose title or body matches
    --match <provider>   How --search matches: substring (default), token, regex
    -h, --help           Show this help

A search that matches part of any tag lists every note.`

// ListOptions holds the filters of the list command.
type ListOptions struct {
	Archived bool
	Tag      string
	Search   string
	Match    string
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewListCmd: open dependency cannot be nil")
	}
	var opts ListOptions

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				notes, err := ListNotes(cmd, a, opts)
				if err != nil {
					return err
				}
				PrintNotes(cmd.OutOrStdout(), notes)
				return nil
			})
		},
	}

	listCmd.Flags().BoolVar(&opts.Archived, "archived", false, "Show archived notes instead of active ones")
	listCmd.Flags().StringVar(&opts.Tag, "tag", "", "Only notes with this exact tag")
	listCmd.Flags().StringVar(&opts.Search, "search", "", "Only notes whose title or body matches")
	listCmd.Flags().StringVar(&opts.Match, "match", "substring", "How --search matches: substring, token, regex")
	return listCmd
}

// ListNotes returns the notes visible with opts applied.
func ListNotes(cmd *cobra.Command, a *app, opts ListOptions) ([]domain.Note, error) {
	provider, err := workspace.NewSearchProvider(opts.Match)
	if err != nil {
		return nil, err
	}
	route := domain.RouteActive
	if opts.Archived {
		route = domain.RouteArchived
	}
	ws, err := a.workspace(cmd.Context(), workspace.WithRoute(route), workspace.WithSearchProvider(provider))
	if err != nil {
		return nil, err
	}
	// A search clears the tag filter, so the tag goes second.
	ws.SetSearchQuery(opts.Search)
	if opts.Tag != "" {
		ws.SetTagFilter(opts.Tag)
	}
	return ws.VisibleNotes(), nil
}

// PrintNotes writes notes as a table.
func PrintNotes(w io.Writer, notes []domain.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("ID", "TITLE", "TAGS", "CREATED")
	for _, n := range notes {
		table.AddRow(shortID(n.ID), n.Title, strings.Join(n.Tags, ", "), humanize.Time(n.CreatedAt))
	}
	fmt.Fprintln(w, table)
}

// shortID trims UUIDs to a prefix that is still accepted as an argument.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	cmd.RootCmd.AddCommand(NewListCmd(openApp))
}
