package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.identifier == "" {
		return ""
	}
	return fmt.Sprintf("(%q)", a.identifier)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "exactauth CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
