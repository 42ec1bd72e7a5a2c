// Command languagestats generates most used languages card and json.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("languagestats", job.Languages)
}
