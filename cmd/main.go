package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"battleship-cli/cli"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		// local overrides are optional for a terminal game
		_ = godotenv.Load(".env")
	}

	seed := flag.Int64("seed", 0, "fixed seed for ship placement and the computer opponent; 0 picks a time based seed")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	if *seed == 0 {
		if seedEnv := os.Getenv("SEED"); seedEnv != "" {
			parsed, err := strconv.ParseInt(seedEnv, 10, 64)
			if err != nil {
				panic(err)
			}
			*seed = parsed
		} else {
			*seed = time.Now().UnixNano()
		}
	}

	if *noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	match, err := cli.NewMatch(cli.WithRand(rand.New(rand.NewSource(*seed))))
	if err != nil {
		log.Fatalln(err)
	}

	if _, err := match.Run(); err != nil {
		log.Fatalln(err)
	}
}
