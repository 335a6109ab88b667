package main

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/cmd"
	"github.com/cristianoliveira/notedeck/internal/colors"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/workspace"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command.
func NewAddCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewAddCmd: open dependency cannot be nil")
	}
	var title, tags, body string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Long: `Add a note.

USAGE:
    notedeck add --title <title> [--tags a,b] [--body <markdown>]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				ws, err := a.workspace(cmd.Context())
				if err != nil {
					return err
				}
				ws.BeginCreate()
				fields := domain.NoteFields{Title: title, Tags: domain.ParseTags(tags), Details: body}
				if err := drive(ws, ws.Create(fields)); err != nil {
					return err
				}
				n, _ := ws.Current()
				colors.Success(ws.Toast().Message, "("+shortID(n.ID)+")")
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Note title (required)")
	addCmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	addCmd.Flags().StringVar(&body, "body", "", "Markdown body")
	return addCmd
}

// NewEditCmd creates the edit command. Only the given flags change.
func NewEditCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewEditCmd: open dependency cannot be nil")
	}
	var title, tags, body string

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Long: `Edit a note. Fields without a flag keep their value.

USAGE:
    notedeck edit <id> [--title <title>] [--tags a,b] [--body <markdown>]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				ws, err := a.workspace(cmd.Context())
				if err != nil {
					return err
				}
				n, err := resolveNote(ws, args[0])
				if err != nil {
					return err
				}
				fields := n.Fields()
				if cmd.Flags().Changed("title") {
					fields.Title = title
				}
				if cmd.Flags().Changed("tags") {
					fields.Tags = domain.ParseTags(tags)
				}
				if cmd.Flags().Changed("body") {
					fields.Details = body
				}
				if err := drive(ws, ws.Update(n.ID, fields)); err != nil {
					return err
				}
				colors.Success(ws.Toast().Message)
				return nil
			})
		},
	}
	editCmd.Flags().StringVar(&title, "title", "", "New title")
	editCmd.Flags().StringVar(&tags, "tags", "", "New comma separated tags")
	editCmd.Flags().StringVar(&body, "body", "", "New markdown body")
	return editCmd
}

// NewRemoveCmd creates the rm command.
func NewRemoveCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewRemoveCmd: open dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note permanently",
		Long:  `Delete a note permanently.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				ws, err := a.workspace(cmd.Context())
				if err != nil {
					return err
				}
				n, err := resolveNote(ws, args[0])
				if err != nil {
					return err
				}
				if err := drive(ws, ws.Remove(n.ID)); err != nil {
					return err
				}
				colors.Success(ws.Toast().Message)
				return nil
			})
		},
	}
}

// NewArchiveCmd creates the archive command. It toggles the archived flag.
func NewArchiveCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewArchiveCmd: open dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a note, or restore an archived one",
		Long:  `Archive an active note, or restore an archived note to the active notes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				ws, err := a.workspace(cmd.Context())
				if err != nil {
					return err
				}
				n, err := resolveNote(ws, args[0])
				if err != nil {
					return err
				}
				if err := drive(ws, ws.ToggleArchive(n.ID)); err != nil {
					return err
				}
				t := ws.Toast()
				colors.Success(t.Message)
				if t.HasAction() {
					colors.Muted(fmt.Sprintf("See %s with 'notedeck list%s'", t.ActionLabel, routeFlag(t.Action)))
				}
				return nil
			})
		},
	}
}

// NewTagsCmd creates the tags command.
func NewTagsCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewTagsCmd: open dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		Long:  `List the tags of all notes, active and archived, with how many notes carry each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				ws, err := a.workspace(cmd.Context())
				if err != nil {
					return err
				}
				tags := ws.Tags()
				w := cmd.OutOrStdout()
				if len(tags) == 0 {
					fmt.Fprintln(w, "No tags found")
					return nil
				}
				counts := tagCounts(append(ws.Active(), ws.Archived()...))
				table := uitable.New()
				table.AddRow("TAG", "NOTES")
				for _, tag := range tags {
					table.AddRow(tag, counts[tag])
				}
				fmt.Fprintln(w, table)
				return nil
			})
		},
	}
}

func tagCounts(notes []domain.Note) map[string]int {
	counts := make(map[string]int)
	for _, n := range notes {
		for _, tag := range n.Tags {
			counts[tag]++
		}
	}
	return counts
}

// resolveNote finds a note by full ID or unique ID prefix.
func resolveNote(ws *workspace.Workspace, id string) (domain.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Note{}, apperrors.Validation("resolve note", "id", "Note ID is required")
	}
	var matches []domain.Note
	for _, n := range append(ws.Active(), ws.Archived()...) {
		if n.ID == id {
			return n, nil
		}
		if strings.HasPrefix(n.ID, id) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Note{}, apperrors.Persistence("resolve note", fmt.Errorf("%s: %w", id, domain.ErrNoteNotFound))
	case 1:
		return matches[0], nil
	default:
		return domain.Note{}, apperrors.Validation("resolve note", "id", fmt.Sprintf("ID prefix %q matches %d notes", id, len(matches)))
	}
}

func routeFlag(r domain.Route) string {
	if r == domain.RouteArchived {
		return " --archived"
	}
	return ""
}

func init() {
	cmd.RootCmd.AddCommand(
		NewAddCmd(openApp),
		NewEditCmd(openApp),
		NewRemoveCmd(openApp),
		NewArchiveCmd(openApp),
		NewTagsCmd(openApp),
	)
}
