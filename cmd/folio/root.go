package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/folio-fx/audio"
	"github.com/lixenwraith/folio-fx/config"
	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/engine"
	"github.com/lixenwraith/folio-fx/parameter"
	"github.com/lixenwraith/folio-fx/terminal"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand
type options struct {
	configPath string
	skills     string
	debug      bool
	trail      bool
	audio      bool
	seed       int64

	logFile *os.File
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Skill network and pointer trail in the terminal",
		Long: "folio renders the portfolio skill network with its category legend.\n" +
			"Hover nodes with the mouse, click to select a category, press t to toggle the trail.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logFile = setupLogging(opts.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cats, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg, cats, opts.rng())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file (default $"+config.EnvConfig+")")
	pf.StringVarP(&opts.skills, "skills", "s", "", "skill TOML file or directory (default built-in list)")
	pf.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	pf.BoolVar(&opts.trail, "trail", false, "enable the pointer trail (overrides config)")
	pf.Int64Var(&opts.seed, "seed", 0, "layout and particle seed, 0 picks one from the clock")
	cmd.Flags().BoolVar(&opts.audio, "audio", false, "enable interaction sounds (overrides config)")

	cmd.AddCommand(newSnapshotCmd(opts), newSkillsCmd(opts))
	return cmd
}

// load resolves config then skills, applying flag overrides between the two
func (o *options) load(cmd *cobra.Command) (*config.Config, []content.SkillCategory, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.skills != "" {
		cfg.Skills = o.skills
	}
	if cmd.Flags().Changed("trail") {
		cfg.Trail.Enabled = o.trail
	}
	if f := cmd.Flags().Lookup("audio"); f != nil && f.Changed {
		cfg.Audio.Enabled = o.audio
	}

	cats, err := content.NewManager().Resolve(cfg.Skills)
	if err != nil {
		return nil, nil, fmt.Errorf("skills: %w", err)
	}
	return cfg, cats, nil
}

func (o *options) rng() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

// crash resets the terminal and exits with the panic and stack on stderr
func crash(where string, r any) {
	terminal.EmergencyReset(os.Stdout)
	// \r\n for raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mFOLIO %s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// runTUI owns the terminal until the user quits
func runTUI(cfg *config.Config, cats []content.SkillCategory, rng *rand.Rand) error {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			crash("MAIN LOOP", r)
		}
	}()

	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.Fini()

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
	}
	defer sounds.Cleanup()

	width, height := term.Size()
	app := newApp(term, cfg, cats, sounds, engine.NewMonotonicTimeProvider(), rng, width, height)
	app.Mount()
	defer app.Unmount()

	frameTicker := time.NewTicker(cfg.Display.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan terminal.Event, parameter.EventChannelSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()

		for {
			ev := term.PollEvent()
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !app.HandleEvent(ev) {
				return nil
			}
		case <-frameTicker.C:
			app.Frame()
		}
	}
}
