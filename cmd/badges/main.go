// Command badges generates shields.io badges list.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("badges", job.Badges)
}
