package monitor

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/recommender"
	"github.com/neurotune/neurotune/pkg/snapshotter"
	"github.com/neurotune/neurotune/pkg/vllm"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the assembled result of one monitor tick.
type Status struct {
	// Time is when the tick started.
	Time time.Time

	// Snapshot is the resource view for the tick. Empty, never nil, when
	// the probe fell back.
	Snapshot *snapshotter.Snapshot

	// Metrics is the runtime view derived from the scrape.
	Metrics vllm.RuntimeMetrics

	// Params are the serving parameters the advice was evaluated against.
	Params config.ParameterSet

	// ParamsPersisted reports whether Params came from the store rather
	// than the built-in defaults.
	ParamsPersisted bool

	// Advice maps firing categories to their suggestions.
	Advice recommender.Advice

	// Notes lists degradations observed during the tick.
	Notes []string
}

func (s *Status) addNote(note string) {
	s.Notes = append(s.Notes, note)
}

// Degraded reports whether any probe or scrape fell back this tick.
func (s *Status) Degraded() bool {
	return len(s.Notes) > 0
}

var titleCaser = cases.Title(language.English)

// categoryHeading turns an advice category into a display heading,
// memory_high into Memory High.
func categoryHeading(c recommender.Category) string {
	return titleCaser.String(strings.ReplaceAll(c.String(), "_", " "))
}

// Render writes the status as a plain text block: device table, runtime
// metrics, current parameters, advice grouped by category, and notes.
func Render(w io.Writer, s *Status) error {
	var b strings.Builder

	b.WriteString("neurotune monitor\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Current Time: %s\n", s.Time.Format("2006-01-02 15:04:05"))

	b.WriteString("\nNeuron Device Status:\n")
	if s.Snapshot != nil && s.Snapshot.HasAccelerators() {
		tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
		for _, dev := range s.Snapshot.Accelerators {
			fmt.Fprintf(tw, "  Device %d:\t%.1f/%.1fGB\t(%.1f%% util)\n",
				dev.ID,
				float64(dev.MemoryUsedBytes)/(1<<30),
				float64(dev.MemoryTotalBytes)/(1<<30),
				dev.UtilizationPercent)
		}
		tw.Flush()
		fmt.Fprintf(&b, "  Total: %d cores, %.1fGB\n",
			s.Snapshot.TotalCoreCount(), s.Snapshot.TotalAcceleratorMemoryGiB())
	} else {
		b.WriteString("  no devices detected\n")
	}

	b.WriteString("\nPerformance Metrics:\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "  First Token Latency:\t%.3fs\n", s.Metrics.FirstTokenLatencySeconds)
	fmt.Fprintf(tw, "  Token Throughput:\t%.1f tokens/s\n", s.Metrics.TokenThroughputPerSecond)
	fmt.Fprintf(tw, "  Requests/s:\t%.2f\n", s.Metrics.RequestsPerSecond)
	fmt.Fprintf(tw, "  Cache Usage:\t%.1f%%\n", s.Metrics.CacheUsagePercent)
	fmt.Fprintf(tw, "  Memory Usage:\t%.1f%%\n", s.Metrics.MemoryUsageFraction*100)
	tw.Flush()

	heading := "Current Parameters:"
	if !s.ParamsPersisted {
		heading = "Current Parameters (defaults):"
	}
	fmt.Fprintf(&b, "\n%s\n", heading)
	tw = tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "  tensor_parallel_size:\t%d\n", s.Params.TensorParallelSize)
	fmt.Fprintf(tw, "  max_model_len:\t%d\n", s.Params.MaxModelLen)
	fmt.Fprintf(tw, "  max_num_seqs:\t%d\n", s.Params.MaxNumSeqs)
	fmt.Fprintf(tw, "  block_size:\t%d\n", s.Params.BlockSize)
	tw.Flush()

	if !s.Advice.Empty() {
		b.WriteString("\nParameter Recommendations:\n")
		for _, category := range s.Advice.Categories() {
			fmt.Fprintf(&b, "  %s:\n", categoryHeading(category))
			for _, item := range s.Advice[category] {
				fmt.Fprintf(&b, "    - %s\n", item)
			}
		}
	}

	if len(s.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, note := range s.Notes {
			fmt.Fprintf(&b, "  - %s\n", note)
		}
	}

	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
