// Command profilestats generates every profile asset in one process.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("profilestats", job.All)
}
