// Command streakstats generates streak stats card.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("streakstats", job.Streak)
}
