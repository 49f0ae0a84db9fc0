// Command sim plays bot-only 3-5-8 games and reports how the seats fared.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"threefiveeight/internal/bot"
	"threefiveeight/internal/domain"
	"threefiveeight/internal/sim"
)

func envInt(key string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()

	games := flag.Int("games", int(envInt("SIM_GAMES", 100)), "number of games to play")
	seed := flag.Int64("seed", envInt("SIM_SEED", 1), "seed of the first game")
	levelName := flag.String("level", envString("SIM_LEVEL", "pro"), "bot level: basic or pro")
	target := flag.Int("target", domain.DefaultVictoryTarget, "victory target")
	maxSteps := flag.Int("max-steps", 100000, "action limit per game")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	level, err := bot.ParseLevel(*levelName)
	if err != nil {
		log.WithError(err).Fatal("invalid level")
	}

	summary, err := sim.Run(sim.Options{
		Games:         *games,
		Seed:          *seed,
		Level:         level,
		VictoryTarget: *target,
		MaxSteps:      *maxSteps,
		Logger:        log,
	})
	if err != nil {
		log.WithFields(logrus.Fields{"games_done": summary.Games, "level": level}).Errorf("simulation failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("games: %d  hands: %d  actions: %d  level: %s\n", summary.Games, summary.Hands, summary.Steps, level)
	for seat, w := range summary.Wins {
		fmt.Printf("seat %d wins: %d\n", seat, w)
	}
	for reason, n := range summary.Reasons {
		fmt.Printf("won by %s: %d\n", reason, n)
	}
	for _, t := range []int{domain.TargetDealer, domain.TargetFirst, domain.TargetSecond} {
		fmt.Printf("average delta at target %d: %+.3f\n", t, summary.AverageDelta(t))
	}
}
