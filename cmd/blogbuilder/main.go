package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/cmd/blogbuilder/commands"
	blogerrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("blogbuilder"),
		kong.Description("Static blog generator: markdown posts with YAML frontmatter in, HTML site out."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	global := &commands.Global{Logger: slog.Default()}
	err := ctx.Run(global, &cli)

	adapter := blogerrors.NewCLIErrorAdapter(cli.Verbose, nil)
	adapter.HandleError(err)
}
