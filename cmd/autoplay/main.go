// Command autoplay runs rounds headlessly with random aim and reports how
// they ended. Useful for checking tuning and level tables without a window.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
	"github.com/milk9111/bubbleblast/ecs/system"
	"github.com/milk9111/bubbleblast/prefabs"
)

func main() {
	modeName := flag.String("mode", "endless", "game mode: endless or levels")
	level := flag.Int("level", 1, "starting level number (levels mode)")
	rounds := flag.Int("rounds", 10, "rounds to play")
	maxFrames := flag.Int("frames", 60*60*5, "frame limit per round")
	shotEvery := flag.Int("every", 45, "frames between shots")
	seed := flag.Int64("seed", 1, "random seed")
	dir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides")
	flag.Parse()

	prefabs.Dir = *dir
	mode, err := ecs.ParseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	levels, err := prefabs.LoadLevels()
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	sim := system.NewSimulation(tuning, mode, levels, rand.New(rand.NewSource(rng.Int63())))

	outcomes := map[ecs.State]int{}
	total := 0
	for r := 0; r < *rounds; r++ {
		sim.World.SetLevel(*level - 1)
		sim.Reset()
		snap, explosions := play(sim, rng, *maxFrames, *shotEvery)
		outcomes[snap.State]++
		total += snap.Score
		log.Printf("[autoplay] round %d: %s score=%d frames=%d bodies=%d contacts=%d explosions=%d",
			r+1, snap.State, snap.Score, snap.Frame, len(snap.Bodies), sim.World.Contacts, explosions)
	}

	if *rounds > 0 {
		log.Printf("[autoplay] %d rounds: won=%d level_complete=%d lost=%d unfinished=%d mean score=%.1f",
			*rounds, outcomes[ecs.StateWon], outcomes[ecs.StateLevelComplete], outcomes[ecs.StateLost],
			outcomes[ecs.StatePlaying], float64(total)/float64(*rounds))
	}
}

// play aims at a random point above the spawn and shoots every few frames.
// It returns the final snapshot and how many explosions the round produced.
func play(sim *system.Simulation, rng *rand.Rand, maxFrames, every int) (ecs.Snapshot, int) {
	w := sim.World
	explosions := 0
	every = max(every, 1)
	sx, sy := w.Tuning.SpawnPoint()
	target := cp.Vector{X: sx, Y: sy - 100}
	for f := 0; f < maxFrames && !w.State.Terminal(); f++ {
		in := ecs.Input{Pointer: target}
		if w.Aiming && f%every == every-1 {
			in.Trigger = true
			target = cp.Vector{
				X: sx + (rng.Float64()*2-1)*w.Tuning.MaxAimDistance,
				Y: sy - w.Tuning.MaxAimDistance*(0.3+0.7*rng.Float64()),
			}
		}
		sim.Step(in)
		explosions += len(w.Events().Drain())
	}
	return sim.Snapshot(), explosions
}
