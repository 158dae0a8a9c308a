// The rtshell command runs an interactive shell for inspecting a loaded
// scene and triggering renders, modeled on cmd/gml's command-table and
// readline loop but repurposed from GML evaluation to scene inspection.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	rt "github.com/ashcolecarr/go-raytracer"
	"github.com/ashcolecarr/go-raytracer/internal/objfile"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

type Command struct {
	// Symbol is the canonical name of the command. It should include the
	// leading ":".
	Symbol       string
	Aliases      []string
	ExpectedArgs []string // For generating help.
	HelpText     string
	Run          func(*State) error
}

type State struct {
	args     []string
	world    *rt.World
	camera   *rt.Camera
	commands []*Command
}

// errQuit is a signal to the main loop to quit.
var errQuit = errors.New("quit")

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "rt> ",
		HistoryFile:  readlineHistoryFilePath(),
		HistoryLimit: 10000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	state := &State{
		world:  rt.DefaultScene(),
		camera: rt.DefaultCamera(400, 200),
	}

	var commands []*Command
	commandLookup := make(map[string]*Command)

	registerCommand := func(command *Command) {
		mustAddToLookup := func(symbol string) {
			if commandLookup[symbol] != nil {
				log.Fatalf("duplicate command: %v vs %v", command, commandLookup[symbol])
			}
			commandLookup[symbol] = command
		}
		commands = append(commands, command)
		mustAddToLookup(command.Symbol)
		for _, alias := range command.Aliases {
			mustAddToLookup(alias)
		}
	}
	state.commands = commands

	registerCommand(&Command{
		Symbol:   ":objects",
		Aliases:  []string{":o"},
		HelpText: "List the shapes in the current world",
		Run: func(st *State) error {
			for i, obj := range st.world.Objects {
				fmt.Printf("  %d: %s\n", i, obj.Kind)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":lights",
		HelpText: "List the lights in the current world",
		Run: func(st *State) error {
			for i, light := range st.world.Lights {
				fmt.Printf("  %d: position=%v intensity=%v\n", i, light.Position, light.Intensity)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":load",
		Aliases:      []string{":l"},
		ExpectedArgs: []string{"<scene>"},
		HelpText:     "Load a demo scene: default, group, csg",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :load <default|group|csg>")
			}
			switch st.args[0] {
			case "default":
				st.world = rt.DefaultScene()
			case "group":
				st.world = rt.GroupDemoScene()
			case "csg":
				st.world = rt.CSGDemoScene()
			default:
				return fmt.Errorf("unknown demo scene %q", st.args[0])
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":loadobj",
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Load an OBJ mesh file as the only object in the world",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :loadobj <filename>")
			}
			f, err := os.Open(st.args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := objfile.Parse(f)
			if err != nil {
				return err
			}
			fmt.Printf("parsed %d vertices, %d normals, %d group(s), %d line(s) ignored\n",
				len(res.Vertices)-1, len(res.Normals)-1, len(res.Groups), res.Ignored)

			st.world = rt.NewWorld()
			st.world.Objects = append(st.world.Objects, objfile.ToGroup(res))
			st.world.Lights = st.world.Lights[:0]
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":moveto",
		ExpectedArgs: []string{"<x>", "<y>", "<z>"},
		HelpText:     "Move the camera's viewpoint to look at the origin from x,y,z",
		Run: func(st *State) error {
			if len(st.args) < 3 {
				return errors.New("usage: :moveto <x> <y> <z>")
			}
			x, err := strconv.ParseFloat(st.args[0], 64)
			if err != nil {
				return err
			}
			y, err := strconv.ParseFloat(st.args[1], 64)
			if err != nil {
				return err
			}
			z, err := strconv.ParseFloat(st.args[2], 64)
			if err != nil {
				return err
			}
			st.camera.Transform = prim.ViewTransform(
				prim.NewPoint(x, y, z),
				prim.NewPoint(0, 0, 0),
				prim.NewVector(0, 1, 0),
			)
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":render",
		Aliases:      []string{":r"},
		ExpectedArgs: []string{"<out_file.ppm>"},
		HelpText:     "Render the current world and camera to a PPM file",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :render <out_file.ppm>")
			}
			canvas := st.camera.Render(st.world)
			f, err := os.Create(st.args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := canvas.WritePPM(f); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", st.args[0])
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":help",
		Aliases:  []string{":h"},
		HelpText: "Prints this help text",
		Run:      showHelp,
	})
	registerCommand(&Command{
		Symbol:   ":quit",
		Aliases:  []string{":q"},
		HelpText: "Exit the shell",
		Run: func(st *State) error {
			return errQuit
		},
	})
	state.commands = commands

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			fmt.Printf("not a command (commands start with ':'); try :help\n")
			continue
		}

		args := parseCommandArgs(line)
		if len(args) == 0 {
			log.Fatalf("bug in command parser: %q", line)
		}
		cmd := commandLookup[args[0]]
		if cmd == nil {
			fmt.Printf("Unknown command: %v\n", args[0])
			continue
		}
		state.args = args[1:]
		err = cmd.Run(state)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func showHelp(st *State) error {
	usageHelp := make([]string, len(st.commands))
	maxLen := 0
	for i, command := range st.commands {
		parts := []string{command.Symbol}
		parts = append(parts, command.Aliases...)
		parts = append(parts, command.ExpectedArgs...)
		usageHelp[i] = strings.Join(parts, " ")
		maxLen = max(maxLen, len(usageHelp[i]))
	}
	fmt.Printf("Commands:\n")
	for i, command := range st.commands {
		fmt.Printf("  %-*s : %s\n", maxLen, usageHelp[i], command.HelpText)
	}
	return nil
}

func readlineHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".rtshell_history")
}

func parseCommandArgs(line string) []string {
	var args []string
	var start int
	for i := range line {
		curr := line[i]
		if strings.IndexByte(" \t\n\r", curr) != -1 {
			if start < i {
				args = append(args, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		args = append(args, line[start:])
	}
	return args
}
