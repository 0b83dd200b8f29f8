package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/smasonuk/gosieray"
	"github.com/smasonuk/gosieray/projectile"
	"github.com/smasonuk/gosieray/viewer"
)

func main() {
	x := flag.Float64("x", 0, "start x")
	y := flag.Float64("y", 1, "start y")
	vx := flag.Float64("vx", 1, "initial velocity x")
	vy := flag.Float64("vy", 1, "initial velocity y")
	gravity := flag.Float64("gravity", 0.1, "gravity per tick")
	wind := flag.Float64("wind", 0.01, "headwind per tick")
	width := flag.Int("width", 64, "canvas width")
	height := flag.Int("height", 32, "canvas height")
	out := flag.String("out", "none", "output: ppm (stdout), view (window) or none")
	scale := flag.Int("scale", 8, "viewer zoom")
	flag.Parse()

	sim := projectile.NewSimulation(
		gosieray.NewPoint(*x, *y, 0),
		gosieray.NewVector(*vx, *vy, 0),
		projectile.NewEnvironment(*gravity, *wind),
	)
	trail, err := sim.Run()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Landed after %d ticks", len(trail)-1)

	canvas := gosieray.NewCanvas(*width, *height)
	drawn := projectile.Plot(canvas, trail, gosieray.NewColor(1, 0.8, 0.6))
	log.Printf("Plotted %d of %d positions", drawn, len(trail))

	switch *out {
	case "ppm":
		w := bufio.NewWriter(os.Stdout)
		if _, err := w.WriteString(canvas.ToPPM()); err != nil {
			log.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			log.Fatal(err)
		}
	case "view":
		if err := viewer.Run(canvas, "Projectile", *scale); err != nil {
			log.Fatal(err)
		}
	case "none":
	default:
		log.Fatalf("unknown output %q", *out)
	}
}
