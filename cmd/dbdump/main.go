package main

import (
	"flag"
	"fmt"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"log"
	dragonbones "my_dragonbones"
	"os"
)

func main() {
	strict := flag.Bool("strict", false, "Fail on unknown display type or bound box type")
	logFile := flag.String("log", "", "Write decoder log to this file (rotated)")
	asJSON := flag.Bool("json", false, "Print the normalized document as JSON")
	verbose := flag.Bool("v", false, "Log unknown variants to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dbdump [-strict] [-json] [-log file] [-v] skeleton.json")
		os.Exit(2)
	}

	decoder := &dragonbones.Decoder{Strict: *strict}
	if out := logOutput(*logFile, *verbose); out != nil {
		decoder.Logger = log.New(out, "", log.LstdFlags)
	}

	doc, err := decoder.Load(flag.Arg(0))
	HandleErr(err)

	if *asJSON {
		bs, err := dragonbones.Marshal(doc)
		HandleErr(err)
		_, err = os.Stdout.Write(append(bs, '\n'))
		HandleErr(err)
		return
	}
	printSummary(os.Stdout, doc)
}

func logOutput(path string, verbose bool) io.Writer {
	if path != "" {
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}
	if verbose {
		return os.Stderr
	}
	return nil
}

func HandleErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(w io.Writer, doc *dragonbones.Document) {
	fmt.Fprintf(w, "%s  version %s (compatible %s)  %g fps\n",
		doc.Name, doc.Version.Original(), doc.CompatibleVersion.Original(), doc.FrameRate)
	for _, armature := range doc.Armatures {
		fmt.Fprintf(w, "  armature %q  type=%s  %g fps\n", armature.Name, armature.Type, armature.FrameRate)
		fmt.Fprintf(w, "    bones=%d slots=%d skins=%d iks=%d animations=%d\n",
			len(armature.Bones), len(armature.Slots), len(armature.Skins), len(armature.Iks), len(armature.Animations))
		for _, skin := range armature.Skins {
			displays, meshes := 0, 0
			for _, slot := range skin.Slots {
				displays += len(slot.Displays)
				for _, display := range slot.Displays {
					if display.IsMesh() {
						meshes++
					}
				}
			}
			fmt.Fprintf(w, "    skin %q  slots=%d displays=%d meshes=%d\n", skin.Name, len(skin.Slots), displays, meshes)
		}
		for _, animation := range armature.Animations {
			fmt.Fprintf(w, "    animation %q  duration=%g loop=%d bone=%d slot=%d ffd=%d\n",
				animation.Name, animation.Duration, animation.Loop,
				len(animation.Bones), len(animation.Slots), len(animation.FFDs))
		}
	}
}
