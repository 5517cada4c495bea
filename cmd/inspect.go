package cmd

import (
	"fmt"

	"github.com/otonality/jipitch/comma"
	"github.com/otonality/jipitch/constants"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a ratio",
	Long:  `Inspects a ratio`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(ratio string) {
	res, err := buildRatioAnalysis(ratio, constants.GetConcertPitch(), comma.DefaultTable())
	if err != nil {
		panic("Could not analyze ratio: " + err.Error())
	}

	fmt.Printf("ratio: %v\n", res.Ratio)
	fmt.Printf("exponents: %v\n", res.Exponents)
	fmt.Printf("cents: %v\n", res.Cents)
	fmt.Printf("frequency: %v\n", res.Frequency)
	fmt.Printf("octave: %v\n", res.Octave)
	fmt.Printf("otonal: %v\n", res.Otonal)
	if res.Harmonicity.Barlow != nil {
		fmt.Printf("barlow: %v\n", *res.Harmonicity.Barlow)
	}
	fmt.Printf("simplified barlow: %v\n", res.Harmonicity.SimplifiedBarlow)
	fmt.Printf("euler: %v\n", res.Harmonicity.Euler)
	fmt.Printf("tenney: %v\n", res.Harmonicity.Tenney)
	fmt.Printf("vogel: %v\n", res.Harmonicity.Vogel)
	fmt.Printf("wilson: %v\n", res.Harmonicity.Wilson)
	fmt.Printf("closest pythagorean: %v\n", res.Pythagorean.ClosestInterval)
	fmt.Printf("pitch name: %v\n", res.Pythagorean.PitchName)
	fmt.Printf("cent deviation: %v\n", res.Pythagorean.CentDeviation)
}
