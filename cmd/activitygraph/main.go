// Command activitygraph generates contribution heatmap.
package main

import "github.com/m-zajac/profilestats/internal/job"

func main() {
	job.Main("activitygraph", job.Activity)
}
