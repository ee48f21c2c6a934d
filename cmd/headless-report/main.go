package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/Cyber-Pursuit/internal/game"
	"github.com/Garsondee/Cyber-Pursuit/internal/pursuit"
)

// runStats is everything worth reporting about one scripted episode.
type runStats struct {
	runIndex int
	seed     int64

	outcome string // victory, defeat, timeout
	ticks   int
	score   int
	finalHP int

	hits     int
	kills    int
	contacts int
	pickups  int

	firstContactTick int
	firstKillTick    int
}

func main() {
	var episodes int
	var ticks int
	var enemies int
	var modeName string
	var seedBase int64
	var seedStep int64

	flag.IntVar(&episodes, "episodes", 5, "number of headless episodes")
	flag.IntVar(&ticks, "ticks", 3600, "tick budget per episode")
	flag.IntVar(&enemies, "enemies", 4, "pursuers per episode")
	flag.StringVar(&modeName, "mode", "hybrid", "pursuit mode: hybrid, predictive, potential-field, genetic")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for episode 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between episodes")
	flag.Parse()

	if episodes <= 0 {
		fmt.Println("error: -episodes must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	mode := pursuit.ParseMode(modeName)
	fmt.Printf("=== Headless Pursuit Report ===\n")
	fmt.Printf("mode=%s episodes=%d ticks=%d enemies=%d seed_base=%d seed_step=%d\n\n",
		mode, episodes, ticks, enemies, seedBase, seedStep)

	all := make([]runStats, 0, episodes)
	for i := 0; i < episodes; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runEpisode(i+1, seed, ticks, enemies, mode)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

// runEpisode plays one scripted-evader episode to completion or tick budget.
func runEpisode(runIndex int, seed int64, ticks, enemies int, mode pursuit.Mode) runStats {
	w := game.NewWorld(
		game.WithSeed(seed),
		game.WithMode(mode),
		game.WithEnemyCount(enemies),
	)
	for i := 0; i < ticks && !w.Over; i++ {
		w.Step(game.ScriptedEvader(w))
	}

	entries := w.SimLog.Entries()
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		outcome:          outcomeOf(w),
		ticks:            w.Tick,
		score:            w.Score,
		finalHP:          w.Player.Health,
		hits:             w.SimLog.CountCategory("combat", "projectile_hit"),
		kills:            w.SimLog.CountCategory("combat", "kill"),
		contacts:         w.SimLog.CountCategory("combat", "contact_damage"),
		pickups:          w.SimLog.CountCategory("pickup", "health"),
		firstContactTick: firstTick(entries, "combat", "contact_damage", ""),
		firstKillTick:    firstTick(entries, "combat", "kill", ""),
	}
}

func outcomeOf(w *game.World) string {
	switch {
	case w.Victory:
		return "victory"
	case w.Over:
		return "defeat"
	default:
		return "timeout"
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Episode %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s ticks=%d score=%d final_hp=%d\n",
		rs.outcome, rs.ticks, rs.score, rs.finalHP)
	fmt.Printf("combat: hits=%d kills=%d contacts_taken=%d pickups=%d\n",
		rs.hits, rs.kills, rs.contacts, rs.pickups)
	fmt.Printf("phase_markers: first_contact=%d first_kill=%d\n\n",
		rs.firstContactTick, rs.firstKillTick)
}

func printAggregate(all []runStats) {
	victories, defeats, timeouts := outcomeCounts(all)

	totalScore := 0
	totalTicks := 0
	totalKills := 0
	totalContacts := 0
	for _, rs := range all {
		totalScore += rs.score
		totalTicks += rs.ticks
		totalKills += rs.kills
		totalContacts += rs.contacts
	}
	n := float64(len(all))

	fmt.Printf("=== Aggregate (%d episodes) ===\n", len(all))
	fmt.Printf("outcomes: victory=%d defeat=%d timeout=%d\n", victories, defeats, timeouts)
	fmt.Printf("averages: score=%.1f ticks=%.1f kills=%.1f contacts_taken=%.1f\n",
		float64(totalScore)/n, float64(totalTicks)/n, float64(totalKills)/n, float64(totalContacts)/n)
}

func outcomeCounts(all []runStats) (victories, defeats, timeouts int) {
	for _, rs := range all {
		switch rs.outcome {
		case "victory":
			victories++
		case "defeat":
			defeats++
		default:
			timeouts++
		}
	}
	return victories, defeats, timeouts
}
