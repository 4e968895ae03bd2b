package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

var errCrossPartition = errors.New("pending and completed todos cannot be reordered into each other")

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new todo (title can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, ok := a.store.Add(strings.Join(args, " "))
			if !ok {
				return usagef("add: empty title")
			}
			if err := a.store.SaveErr(); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", it.ID))
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var group bool
	c := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.render(group))
			return nil
		},
	}
	c.Flags().BoolVarP(&group, "group", "g", false, "group by pending/completed")
	return c
}

func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a todo between pending and completed",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.existingID(cmd, args[0])
			if err != nil {
				return err
			}
			a.store.Toggle(id)
			if err := a.store.SaveErr(); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			it, _ := a.store.Get(id)
			state := "pending"
			if it.Completed {
				state = "completed"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("#%d marked %s", id, state))
			return nil
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a todo",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.existingID(cmd, args[0])
			if err != nil {
				return err
			}
			a.store.Delete(id)
			if err := a.store.SaveErr(); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed #%d", id))
			return nil
		},
	}
}

func (a *app) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <id> <over-id>",
		Short: "Move a todo to the position of another in the same list",
		Long: `Move a todo to the position currently held by another todo, shifting the
todos in between. Both must be pending or both completed.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.existingID(cmd, args[0])
			if err != nil {
				return err
			}
			over, err := a.existingID(cmd, args[1])
			if err != nil {
				return err
			}
			if id == over {
				ui.OK(cmd.OutOrStdout(), "nothing to move")
				return nil
			}
			if !a.store.Reorder(id, over) {
				return errCrossPartition
			}
			if err := a.store.SaveErr(); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("moved #%d to #%d's position", id, over))
			return nil
		},
	}
}

// existingID parses an id argument and checks it names a stored todo.
func (a *app) existingID(cmd *cobra.Command, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("%s: not a number: %s", cmd.Name(), arg)
	}
	if _, ok := a.store.Get(id); !ok {
		ui.Hint(cmd.ErrOrStderr(), "Hint: run `todo ls` to see valid ids")
		return 0, usagef("%s: no todo with id %d", cmd.Name(), id)
	}
	return id, nil
}

// -------------- rendering helpers --------------

func (a *app) render(group bool) string {
	t := ui.Current()
	c := a.store.Collection()
	d, p := c.Stats()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), c.Len(),
	)

	lines := []string{header, ui.ProgressBar(d, d+p, 28), ""}
	if group {
		lines = append(lines, groupLines(a.store.Partitions())...)
	} else {
		lines = append(lines, flatLines(c.Items())...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return ui.Panel(lines)
}

func flatLines(items []model.Todo) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := t.Muted.Render(fmt.Sprintf("#%-3d", it.ID))
		box := t.Muted.Render(t.BoxUnchecked)
		title := truncate.StringWithTail(it.Text, 80, "...")
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
			title = t.Done.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", id, box, title))
	}
	return out
}

func groupLines(pending, completed []model.Todo) []string {
	t := ui.Current()
	section := func(name string, items []model.Todo) []string {
		lines := []string{t.Accent.Render(fmt.Sprintf("%s (%d)", name, len(items)))}
		if len(items) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(items)...)
	}
	lines := section("Pending", pending)
	lines = append(lines, "")
	return append(lines, section("Completed", completed)...)
}
