package cmd

import (
	"fmt"

	"github.com/otonality/jipitch/constants"
	"github.com/otonality/jipitch/midi"
	"github.com/otonality/jipitch/pitch"
	"github.com/otonality/jipitch/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the default just chromatic scale as a MIDI file",
	Long:  `Writes the default just chromatic scale as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		export(args[0])
	},
}

func export(path string) {
	scale := tuning.Default(pitch.DirectPitch(constants.GetConcertPitch()))
	if err := midi.WriteScaleSMF(scale, path); err != nil {
		panic("Could not write MIDI file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", path)
}
