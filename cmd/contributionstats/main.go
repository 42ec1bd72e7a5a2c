// Command contributionstats generates yearly contribution stats card.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("contributionstats", job.Contribution)
}
