package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/play"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	seed uint64
)

func init() {
	const usage = "seed for a reproducible board"
	flag.Uint64Var(&seed, "seed", 0, usage)
	flag.Uint64Var(&seed, "s", 0, usage+" (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-seed N] [width=W] [height=H] [mine_count=M]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	mines.Log = log
}

// gameParams starts from the environment defaults and applies key=value
// overrides from the command line.
func gameParams(args []string) (mines.GameParams, error) {
	defaults, err := config.NewGame()
	if err != nil {
		return mines.GameParams{}, err
	}

	src := map[string][]string{
		"width":      {strconv.Itoa(defaults.Width)},
		"height":     {strconv.Itoa(defaults.Height)},
		"mine_count": {strconv.Itoa(defaults.MineCount)},
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return mines.GameParams{}, fmt.Errorf("argument %q is not key=value", arg)
		}
		src[key] = []string{value}
	}

	return mines.ParseGameParams(src)
}

func randSource() (*rand.Rand, error) {
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" || f.Name == "s" {
			seedSet = true
		}
	})
	if seedSet {
		return mines.SeededRand(seed), nil
	}

	envSeed, ok, err := config.Seed()
	if err != nil {
		return nil, err
	}
	if ok {
		return mines.SeededRand(envSeed), nil
	}
	return mines.NewRand(), nil
}

func readLines(f *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	setupLogging()

	params, err := gameParams(flag.Args())
	if err != nil {
		log.Fatal("unable to read game parameters: ", err)
	}

	rnd, err := randSource()
	if err != nil {
		log.Fatal("unable to set up random source: ", err)
	}

	game, err := play.New(params, rnd)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}

	log.WithField("seed", params.Seed()).Debug("starting up")
	fmt.Println(help)

	s := &session{game: game, out: os.Stdout}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return s.run(gCtx, readLines(os.Stdin))
	})
	g.Go(func() error {
		<-gCtx.Done()
		if mainCtx.Err() != nil {
			log.Info("interrupted, shutting down")
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}
}
