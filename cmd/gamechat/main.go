package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/gamechat/internal/config"
	"github.com/matheus3301/gamechat/internal/launcher"
	"go.uber.org/fx"
)

func main() {
	configFlag := flag.String("config", "", "config file (default ~/.gamechat/config.toml)")
	noPremium := flag.Bool("no-premium", false, "hide the premium tab and upgrade")
	tabFlag := flag.String("tab", "", "initial tab: chats, contacts, profile, settings, premium")
	searchFilter := flag.Bool("search-filter", false, "apply the search text to chat and contact lists")
	flag.Parse()

	var o config.Overrides
	o.InitialTab = *tabFlag
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-premium":
			enabled := !*noPremium
			o.PremiumEnabled = &enabled
		case "search-filter":
			o.SearchFilters = searchFilter
		}
	})

	app := fx.New(
		launcher.Module(launcher.Params{ConfigPath: *configFlag, Overrides: o}),
		fx.WithLogger(launcher.EventLogger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app.Run()
}
