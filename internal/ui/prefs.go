package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/prefs"
)

func (a *App) prefsCmd() *cobra.Command {
	var (
		bufferEnabled   bool
		bufferBefore    int
		bufferAfter     int
		defaultDuration int
		glitchPulse     bool
		synthwave       bool
		soundFx         bool
	)

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View or change preferences",
		Long: `View the current preferences, or change them by passing flags.
Only the flags you pass are changed; everything else keeps its value.

Example:
  neurotask prefs
  neurotask prefs --default-duration=60 --synthwave`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			patch := prefs.Patch{}
			if cmd.Flags().Changed("buffer") {
				patch.BufferEnabled = &bufferEnabled
			}
			if cmd.Flags().Changed("buffer-before") {
				patch.BufferBefore = &bufferBefore
			}
			if cmd.Flags().Changed("buffer-after") {
				patch.BufferAfter = &bufferAfter
			}
			if cmd.Flags().Changed("default-duration") {
				patch.DefaultDuration = &defaultDuration
			}
			if cmd.Flags().Changed("glitch-pulse") {
				patch.GlitchPulse = &glitchPulse
			}
			if cmd.Flags().Changed("synthwave") {
				patch.Synthwave = &synthwave
			}
			if cmd.Flags().Changed("sound-fx") {
				patch.SoundFx = &soundFx
			}

			p := sess.Prefs.Update(context.Background(), patch)
			printPrefs(p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bufferEnabled, "buffer", false, "Enable buffer time around scheduled tasks")
	cmd.Flags().IntVar(&bufferBefore, "buffer-before", 5, "Buffer minutes before a task")
	cmd.Flags().IntVar(&bufferAfter, "buffer-after", 5, "Buffer minutes after a task")
	cmd.Flags().IntVar(&defaultDuration, "default-duration", 30, "Default task duration in minutes")
	cmd.Flags().BoolVar(&glitchPulse, "glitch-pulse", false, "Enable the glitch pulse visual mode")
	cmd.Flags().BoolVar(&synthwave, "synthwave", false, "Enable the synthwave visual mode")
	cmd.Flags().BoolVar(&soundFx, "sound-fx", true, "Enable sound cues")

	return cmd
}

func printPrefs(p prefs.Preferences) {
	fmt.Println(formatHeader("Preferences"))
	fmt.Printf("  buffer time       %s (before %dm, after %dm)\n",
		onOff(p.BufferTime.Enabled), p.BufferTime.Before, p.BufferTime.After)
	fmt.Printf("  default duration  %dm\n", p.DefaultDuration)
	fmt.Printf("  glitch pulse      %s\n", onOff(p.VisualModes.GlitchPulse))
	fmt.Printf("  synthwave         %s\n", onOff(p.VisualModes.Synthwave))
	fmt.Printf("  sound fx          %s\n", onOff(p.VisualModes.SoundFx))
}

func onOff(b bool) string {
	if b {
		return formatDone("on")
	}
	return formatMuted("off")
}
