// Command ordmap-shell is an interactive REPL over a string-keyed ordmap.Map,
// for poking at the container's behavior by hand and for saving/loading
// snapshots between sessions.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/nburk/ordmap/internal/config"
	"github.com/nburk/ordmap/internal/fsx"
	"github.com/nburk/ordmap/internal/snapshot"
	"github.com/nburk/ordmap/pkg/ordmap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	flags := flag.NewFlagSet("ordmap-shell", flag.ContinueOnError)
	snapshotPath := flags.String("snapshot", cfg.Snapshot, "path to load/save snapshots from")
	capacity := flags.Int("capacity", cfg.Capacity, "initial storage capacity")
	format := flags.String("format", string(cfg.Format), "output format for range: table or yaml")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}

		fmt.Fprintln(stderr, "error:", err)

		return 1
	}

	cfg.Snapshot = *snapshotPath
	cfg.Capacity = *capacity
	cfg.Format = config.Format(*format)

	m := ordmap.New[string, string]()
	if *capacity > m.StorageCap() {
		m.Reserve(*capacity)
	}

	sh := &shell{m: m, cfg: cfg, fs: fsx.NewReal(), out: stdout, errOut: stderr}

	if exists, _ := sh.fs.Exists(cfg.Snapshot); exists {
		if err := sh.load(cfg.Snapshot); err != nil {
			fmt.Fprintln(stderr, "warning: could not load snapshot:", err)
		}
	}

	return sh.runLoop()
}

type shell struct {
	m      *ordmap.Map[string, string]
	cfg    config.Config
	fs     fsx.FS
	out    *os.File
	errOut *os.File
}

func (sh *shell) runLoop() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("ordmap> ")
		if err != nil {
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if input == "quit" || input == "exit" {
			break
		}

		if err := sh.dispatch(input); err != nil {
			fmt.Fprintln(sh.errOut, "error:", err)
		}
	}

	return 0
}

func (sh *shell) dispatch(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "insert":
		return sh.cmdInsert(args)
	case "find":
		return sh.cmdFind(args)
	case "erase":
		return sh.cmdErase(args)
	case "range":
		return sh.cmdRange(args)
	case "len":
		fmt.Fprintln(sh.out, sh.m.Len())

		return nil
	case "merge":
		sh.m.Merge()

		return nil
	case "reserve":
		return sh.cmdReserve(args)
	case "save":
		return sh.cmdSave(args)
	case "load":
		return sh.cmdLoad(args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (sh *shell) cmdInsert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: insert <key> <value>")
	}

	_, inserted := sh.m.Insert(args[0], args[1])
	if !inserted {
		fmt.Fprintf(sh.out, "%q already present, value unchanged\n", args[0])
	}

	return nil
}

func (sh *shell) cmdFind(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: find <key>")
	}

	v, ok := sh.m.Get(args[0])
	if !ok {
		fmt.Fprintln(sh.out, "(not found)")

		return nil
	}

	fmt.Fprintln(sh.out, v)

	return nil
}

func (sh *shell) cmdErase(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: erase <key>")
	}

	if sh.m.Delete(args[0]) == 0 {
		fmt.Fprintln(sh.out, "(not found)")
	}

	return nil
}

func (sh *shell) cmdRange(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: range <lo> <hi>")
	}

	entries := map[string]string{}

	var ordered []string

	for k, v := range sh.m.Range(args[0], args[1]) {
		entries[k] = v
		ordered = append(ordered, k)
	}

	return sh.render(ordered, entries)
}

func (sh *shell) cmdReserve(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: reserve <capacity>")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("reserve: %w", err)
	}

	sh.m.Reserve(n)

	return nil
}

func (sh *shell) cmdSave(args []string) error {
	path := sh.cfg.Snapshot
	if len(args) == 1 {
		path = args[0]
	}

	return snapshot.Save(path, sh.m)
}

func (sh *shell) cmdLoad(args []string) error {
	path := sh.cfg.Snapshot
	if len(args) == 1 {
		path = args[0]
	}

	return sh.load(path)
}

func (sh *shell) load(path string) error {
	m, err := snapshot.Load(path)
	if err != nil {
		return err
	}

	sh.m = m

	return nil
}

func (sh *shell) render(keys []string, entries map[string]string) error {
	if sh.cfg.Format == config.FormatYAML {
		out := make(map[string]string, len(keys))
		for _, k := range keys {
			out[k] = entries[k]
		}

		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}

		fmt.Fprint(sh.out, string(data))

		return nil
	}

	for _, k := range keys {
		fmt.Fprintf(sh.out, "%s\t%s\n", k, entries[k])
	}

	return nil
}
