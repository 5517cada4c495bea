package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "jipitch",
	Short: "Just intonation pitch toolkit",
	Long:  `Exact just intonation pitch arithmetic, harmonicity metrics and pythagorean naming.`,
}

func init() {
	viper.SetEnvPrefix("JIPITCH")
	viper.AutomaticEnv()
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
