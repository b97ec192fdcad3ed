// Command roomcheck validates the game content: config, rooms, enemy and
// boss stats, the xp rules script and the locales. With -watch it re-runs
// whenever a file under the content directory changes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/ecs/system"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/text"
	"github.com/gookit/color"
)

var (
	colorOK    = color.Style{color.FgGreen, color.OpBold}
	colorWarn  = color.Style{color.FgYellow}
	colorError = color.Style{color.FgRed, color.OpBold}
	colorRoom  = color.Style{color.FgCyan}
	colorBoss  = color.Style{color.FgMagenta, color.OpBold}
	colorFaint = color.Style{color.FgGray}
)

var languages = []string{"en", "fr"}

func main() {
	dir := flag.String("content", content.DiskRoot, "directory whose files override the built-in content")
	watch := flag.Bool("watch", false, "re-check whenever a content file changes")
	flag.Parse()
	content.DiskRoot = *dir

	ok := check(os.Stdout)
	if !*watch {
		if !ok {
			os.Exit(1)
		}
		return
	}

	w, err := content.NewWatcher(content.WatchDirs()...)
	if err != nil {
		log.Fatalf("roomcheck: watch: %v", err)
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	fmt.Println(colorFaint.Sprintf("watching %s (ctrl-c to stop)", strings.Join(content.WatchDirs(), ", ")))

	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			fmt.Println(colorFaint.Sprintf("\n%s changed", name))
			check(os.Stdout)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Println(colorWarn.Sprintf("watch: %v", err))
		case <-interrupt:
			return
		}
	}
}

type report struct {
	out      io.Writer
	errors   int
	warnings int
}

func (r *report) ok(format string, a ...any) {
	fmt.Fprintln(r.out, colorOK.Sprint("ok   ")+fmt.Sprintf(format, a...))
}

func (r *report) warn(format string, a ...any) {
	r.warnings++
	fmt.Fprintln(r.out, colorWarn.Sprint("warn ")+fmt.Sprintf(format, a...))
}

func (r *report) fail(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		r.errors++
		fmt.Fprintln(r.out, colorError.Sprint("FAIL ")+line)
	}
}

// check prints a report and reports whether the content is usable.
func check(out io.Writer) bool {
	r := &report{out: out}

	cfg, err := content.LoadConfig()
	if err != nil {
		r.fail(err)
	} else {
		r.ok("config: start room %s, final boss %s", colorRoom.Sprint(cfg.StartRoom), colorBoss.Sprint(cfg.FinalBoss))
	}

	rooms, err := room.LoadRegistry()
	if err != nil {
		r.fail(err)
	} else {
		checkRooms(r, rooms, cfg.StartRoom, cfg.FinalBoss)
	}

	if err := system.CheckXPRules(); err != nil {
		r.fail(err)
	} else {
		r.ok("xp rules: %s compiles", content.XPRulesFile)
	}

	for _, lang := range languages {
		if _, err := text.Load(lang); err != nil {
			r.fail(err)
			continue
		}
		r.ok("locale %s", lang)
	}

	summary := fmt.Sprintf("%d errors, %d warnings", r.errors, r.warnings)
	switch {
	case r.errors > 0:
		fmt.Fprintln(out, colorError.Sprint(summary))
	case r.warnings > 0:
		fmt.Fprintln(out, colorWarn.Sprint(summary))
	default:
		fmt.Fprintln(out, colorOK.Sprint(summary))
	}
	return r.errors == 0
}

func checkRooms(r *report, rooms *room.Registry, start, finalBoss string) {
	names := rooms.Names()
	r.ok("%d rooms", len(names))

	finalFound := false
	for _, name := range names {
		cur, err := rooms.Resolve(name)
		if err != nil {
			r.fail(err)
			continue
		}
		line := fmt.Sprintf("  %s %s", colorRoom.Sprintf("%-16s", name),
			colorFaint.Sprintf("melee %d x %s, ranged %d x %s, obstacles %d",
				cur.Info.Melee, cur.Assets.MeleeStats, cur.Info.Ranged, cur.Assets.RangedStats, cur.Info.Obstacles))
		if cur.BossStats != nil {
			line += " " + colorBoss.Sprint(cur.BossStats.Name)
			if cur.BossStats.Name == finalBoss {
				finalFound = true
			}
		}
		fmt.Fprintln(r.out, line)
	}

	if _, ok := rooms.Room(start); !ok {
		r.fail(fmt.Errorf("start room %q is not defined", start))
		return
	}
	if !finalFound {
		r.fail(fmt.Errorf("no room holds the final boss %q", finalBoss))
	}

	reachable := rooms.Reachable(start)
	var unreachable []string
	for _, name := range names {
		if !reachable.Has(name) {
			unreachable = append(unreachable, name)
		}
	}
	sort.Strings(unreachable)
	if len(unreachable) == 0 {
		r.ok("every room is reachable from %s", colorRoom.Sprint(start))
	} else {
		r.warn("unreachable from %s: %s", start, strings.Join(unreachable, ", "))
	}

	for _, link := range rooms.OneWayLinks() {
		r.warn("one-way link %s", link)
	}
}
