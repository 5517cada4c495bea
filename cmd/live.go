package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/otonality/jipitch/chord"
	"github.com/otonality/jipitch/constants"
	"github.com/otonality/jipitch/pitch"
	"github.com/otonality/jipitch/tuning"
	"github.com/otonality/jipitch/util"
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Analyzes chords played on a MIDI input in real time",
	Long:  `Analyzes chords played on a MIDI input in real time`,
	Run: func(cmd *cobra.Command, args []string) {
		live()
	},
}

func printAnalysis(a chord.Analysis) {
	fmt.Printf("chord: %v (harmonicity %.4f)\n", a.Key, a.Harmonicity)
	for _, interval := range a.Intervals {
		fmt.Printf("  %v-%v: %v (%.2fc, barlow %.4f)\n",
			interval.LowerKey, interval.UpperKey, interval.Pitch, interval.Cents, interval.Barlow)
	}
}

func live() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("no MIDI input port found")
		return
	}

	scale := tuning.Default(pitch.DirectPitch(constants.GetConcertPitch()))
	onNotes := make(chord.OnNotes)

	// keyboards send note events one by one, so wait until the chord
	// settles before analyzing
	debounced := debounce.New(150 * time.Millisecond)
	analyze := func(notes []uint8) func() {
		return func() {
			if len(notes) == 0 {
				return
			}
			printAnalysis(chord.Analyze(notes, scale))
		}
	}

	// ListenTo invokes the callback on the driver goroutine, so the
	// debounced closure only ever captures a snapshot of the held keys.
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			debounced(analyze(util.SortedKeys(onNotes)))
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			debounced(analyze(util.SortedKeys(onNotes)))
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
