// The raytrace command renders a scene to a PPM image, resolving the scene
// from a YAML render-job config, an OBJ mesh file, a named demo scene, or
// (absent all three) a canned default.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	rt "github.com/ashcolecarr/go-raytracer"
	"github.com/ashcolecarr/go-raytracer/internal/material"
	"github.com/ashcolecarr/go-raytracer/internal/objfile"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

var (
	configFile = flag.String("config", "", "YAML render-job config file")
	objFile    = flag.String("obj_file", "", "OBJ mesh file to render in place of a demo scene")
	sceneName  = flag.String("scene", "default", "demo scene: default, group, or csg")

	width  = flag.Int("width", 400, "canvas width in pixels")
	height = flag.Int("height", 200, "canvas height in pixels")

	outFile  = flag.String("out_file", "", "PPM filename to write")
	progress = flag.Bool("progress", false, "show a live terminal progress bar while rendering")
)

func demoScene(name string) (*rt.World, error) {
	switch name {
	case "default":
		return rt.DefaultScene(), nil
	case "group":
		return rt.GroupDemoScene(), nil
	case "csg":
		return rt.CSGDemoScene(), nil
	default:
		return nil, fmt.Errorf("raytrace: unknown demo scene %q", name)
	}
}

func sceneFromOBJFile(path string) (*rt.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raytrace: opening obj file: %w", err)
	}
	defer f.Close()

	res, err := objfile.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("raytrace: parsing obj file: %w", err)
	}
	if res.Ignored > 0 {
		log.Printf("raytrace: %d line(s) of %s ignored during parsing", res.Ignored, path)
	}

	w := rt.NewWorld()
	w.Objects = append(w.Objects, objfile.ToGroup(res))
	w.Lights = append(w.Lights, material.NewLight(prim.NewPoint(-10, 10, -10), prim.White))
	return w, nil
}

func resolveScene(cfg *RenderConfig) (*rt.World, int, int, error) {
	w := *width
	h := *height

	if cfg != nil {
		if cfg.Width > 0 {
			w = cfg.Width
		}
		if cfg.Height > 0 {
			h = cfg.Height
		}
		scene, err := resolveNamedOrOBJScene(cfg.Scene)
		return scene, w, h, err
	}

	if *objFile != "" {
		scene, err := resolveNamedOrOBJScene(*objFile)
		return scene, w, h, err
	}

	scene, err := demoScene(*sceneName)
	return scene, w, h, err
}

func resolveNamedOrOBJScene(nameOrPath string) (*rt.World, error) {
	switch nameOrPath {
	case "default", "group", "csg":
		return demoScene(nameOrPath)
	case "":
		return demoScene("default")
	default:
		return sceneFromOBJFile(nameOrPath)
	}
}

func buildCamera(cfg *RenderConfig, w, h int) *rt.Camera {
	if cfg != nil && (cfg.From != [3]float64{} || cfg.To != [3]float64{}) {
		fov := cfg.FOV
		if fov == 0 {
			fov = math.Pi / 3
		}
		cam := rt.NewCamera(w, h, fov)
		cam.Transform = prim.ViewTransform(cfg.viewFrom(), cfg.viewTo(), cfg.viewUp())
		return cam
	}
	return rt.DefaultCamera(w, h)
}

func writeImage(canvas *prim.Canvas, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return canvas.WritePPM(f)
}

func main() {
	flag.Parse()
	if *outFile == "" {
		log.Fatal("--out_file is required")
	}

	var cfg *RenderConfig
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	world, w, h, err := resolveScene(cfg)
	if err != nil {
		log.Fatal(err)
	}
	cam := buildCamera(cfg, w, h)

	var canvas *prim.Canvas
	if *progress {
		canvas, err = renderWithProgress(cam, world)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		canvas = cam.Render(world)
	}

	out := *outFile
	if cfg != nil && cfg.Output != "" {
		out = cfg.Output
	}
	if err := writeImage(canvas, out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", out)
}
