// Command surfview opens a pan/zoom viewport demo. Drag to pan, scroll or
// pinch to zoom, double-click to toggle full zoom, F to fit the marked zone.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/surfview/internal/config"
	"github.com/elektrokombinacija/surfview/internal/vis"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON options file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("surfview"),
			app.Size(unit.Dp(1000), unit.Dp(750)),
		)

		application := vis.NewApp(cfg)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
