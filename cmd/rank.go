package cmd

import (
	"fmt"
	"sort"

	"github.com/otonality/jipitch/pitch"
	"github.com/spf13/cobra"
)

var rankMetric string

func init() {
	rankCmd.Flags().StringVar(&rankMetric, "metric", "barlow",
		"harmonicity metric: barlow, euler, tenney, vogel or wilson")
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Ranks ratios from most to least harmonic",
	Long:  `Ranks ratios from most to least harmonic`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need at least 2 ratios...")
		}
		rank(args, rankMetric)
	},
}

// score maps a pitch to a value where higher always means more
// harmonic. The complexity metrics are negated to fit.
func score(p *pitch.JustIntonationPitch, metric string) float64 {
	switch metric {
	case "barlow":
		return p.HarmonicitySimplifiedBarlow()
	case "euler":
		return -float64(p.HarmonicityEuler())
	case "tenney":
		return -p.HarmonicityTenney()
	case "vogel":
		return -float64(p.HarmonicityVogel())
	case "wilson":
		return -float64(p.HarmonicityWilson())
	default:
		panic("Unknown metric: " + metric)
	}
}

func rank(ratios []string, metric string) {
	type ranked struct {
		pitch *pitch.JustIntonationPitch
		score float64
	}

	res := make([]ranked, 0, len(ratios))
	for _, ratio := range ratios {
		p, err := pitch.FromRatio(ratio)
		if err != nil {
			panic("Could not parse ratio: " + err.Error())
		}
		res = append(res, ranked{pitch: p, score: score(p, metric)})
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].score > res[j].score
	})
	for i, r := range res {
		fmt.Printf("%v. %v (%v: %v)\n", i+1, r.pitch, metric, r.score)
	}
}
