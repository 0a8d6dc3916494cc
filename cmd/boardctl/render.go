package main

import (
	"fmt"
	"io"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/fatih/color"
)

var columnColors = map[string]color.Attribute{
	"yellow": color.FgYellow,
	"blue":   color.FgBlue,
	"orange": color.FgHiYellow,
	"green":  color.FgGreen,
	"gray":   color.FgHiBlack,
	"red":    color.FgRed,
}

func headerColor(name string) *color.Color {
	if attr, ok := columnColors[name]; ok {
		return color.New(attr, color.Bold)
	}
	return color.New(color.Bold)
}

func renderBoard(w io.Writer, board queries.GetPipelineBoardQueryResponse) {
	for _, column := range board.Columns {
		fmt.Fprintf(w, "%s (%d)\n", headerColor(column.Column.Color).Sprint(column.Column.Label), column.Count())
		for _, card := range column.Cards {
			marker := ""
			if card.Overdue {
				marker = color.New(color.FgRed).Sprint(" [overdue]")
			}
			fmt.Fprintf(w, "  %s  %s  %s%s\n", card.Number, card.Priority, card.Title, marker)
		}
		if len(column.Actions) > 0 {
			names := make([]string, 0, len(column.Actions))
			for _, a := range column.Actions {
				names = append(names, a.Name)
			}
			fmt.Fprintf(w, "  actions: %v\n", names)
		}
		fmt.Fprintln(w)
	}
	if board.Unplaced > 0 {
		fmt.Fprintf(w, "%s %d order(s) have no column\n", color.New(color.FgYellow).Sprint("!"), board.Unplaced)
	}
}

func renderMove(w io.Writer, target serviceorder.Status, result commands.MoveResult) {
	if !result.Moved() {
		fmt.Fprintf(w, "%s %s stays in %s (%s)\n",
			color.New(color.FgYellow).Sprint("REJECTED"), result.Order.Number(), result.Order.Status(), result.Decision)
		return
	}
	fmt.Fprintf(w, "%s %s -> %s (%s)\n",
		color.New(color.FgGreen).Sprint("MOVED"), result.Order.Number(), target, result.Decision)
}

func renderQuickAction(w io.Writer, result commands.QuickActionResult) {
	fmt.Fprintf(w, "%s %s: %s -> %s\n",
		color.New(color.FgGreen).Sprint(result.Action.Label), result.Order.Number(),
		result.Action.Source, result.Order.Status())
}
