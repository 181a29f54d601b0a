package ingest

// Schema lists the columns of a Garmin Connect activities export.
var Schema = []string{
	"Activity Type",
	"Date",
	"Favorite",
	"Title",
	"Distance",
	"Calories",
	"Time",
	"Avg HR",
	"Max HR",
	"Aerobic TE",
	"Avg Run Cadence",
	"Max Run Cadence",
	"Avg Pace",
	"Best Pace",
	"Total Ascent",
	"Total Descent",
	"Avg Stride Length",
	"Avg Vertical Ratio",
	"Avg Vertical Oscillation",
	"Avg Ground Contact Time",
	"Normalized Power® (NP®)",
	"Training Stress Score®",
	"Avg Power",
	"Max Power",
	"Grit",
	"Flow",
	"Avg. Swolf",
	"Avg Stroke Rate",
	"Total Reps",
	"Decompression",
	"Best Lap Time",
	"Number of Laps",
	"Max Temp",
	"Moving Time",
	"Elapsed Time",
	"Min Elevation",
	"Max Elevation",
}

// Indexes of the columns read from the export.
const (
	colActivityType = 0
	colDate         = 1
	colDistance     = 4
	colTime         = 6
	colAvgHR        = 7
	colAvgPace      = 12
)

// ActivityRunning is the activity type kept during ingestion.
const ActivityRunning = "Running"

var projected = [...]int{colDate, colDistance, colTime, colAvgHR, colAvgPace}
