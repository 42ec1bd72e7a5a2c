// Command readmeupdater refreshes generated sections of the profile README.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("readmeupdater", job.Readme)
}
